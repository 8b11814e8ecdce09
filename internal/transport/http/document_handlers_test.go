package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCreateAndGetDocument(t *testing.T) {
	ts, _ := startTestServer(t)

	resp := postJSON(t, ts.URL+"/api/documents", CreateDocumentRequest{Title: "notes", Language: "go", Content: "package main"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected create status: %d", resp.StatusCode)
	}
	created := decodeJSON[DocumentResponse](t, resp)
	if created.ID == "" || created.Title != "notes" || created.Language != "go" {
		t.Fatalf("unexpected created document: %+v", created)
	}

	getResp, err := http.Get(ts.URL + "/api/documents/" + created.ID)
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected get status: %d", getResp.StatusCode)
	}
	fetched := decodeJSON[DocumentResponse](t, getResp)
	if fetched.Content != "package main" {
		t.Fatalf("unexpected content: %q", fetched.Content)
	}
}

func TestCreateDocumentDefaults(t *testing.T) {
	ts, _ := startTestServer(t)

	resp := postJSON(t, ts.URL+"/api/documents", CreateDocumentRequest{})
	created := decodeJSON[DocumentResponse](t, resp)
	if created.Title != "Untitled" || created.Language != "javascript" {
		t.Fatalf("unexpected defaults: %+v", created)
	}
}

func TestGetUnknownDocumentReturns404(t *testing.T) {
	ts, _ := startTestServer(t)

	resp, err := http.Get(ts.URL + "/api/documents/nope")
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateDocumentPartial(t *testing.T) {
	ts, _ := startTestServer(t)

	created := decodeJSON[DocumentResponse](t, postJSON(t, ts.URL+"/api/documents", CreateDocumentRequest{Title: "draft", Content: "v1"}))

	title := "final"
	body, _ := json.Marshal(UpdateDocumentRequest{Title: &title})
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/documents/"+created.ID, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("update document: %v", err)
	}
	updated := decodeJSON[DocumentResponse](t, resp)
	if updated.Title != "final" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if updated.Content != "v1" {
		t.Fatalf("content should be unchanged: %+v", updated)
	}
}

func TestDeleteDocument(t *testing.T) {
	ts, _ := startTestServer(t)

	created := decodeJSON[DocumentResponse](t, postJSON(t, ts.URL+"/api/documents", CreateDocumentRequest{Title: "gone"}))

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/documents/"+created.ID, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete document: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected delete status: %d", resp.StatusCode)
	}

	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestListDocumentsOrderedByRecency(t *testing.T) {
	ts, _ := startTestServer(t)

	first := decodeJSON[DocumentResponse](t, postJSON(t, ts.URL+"/api/documents", CreateDocumentRequest{Title: "first"}))
	second := decodeJSON[DocumentResponse](t, postJSON(t, ts.URL+"/api/documents", CreateDocumentRequest{Title: "second"}))

	resp, err := http.Get(ts.URL + "/api/documents")
	if err != nil {
		t.Fatalf("list documents: %v", err)
	}
	docs := decodeJSON[[]DocumentResponse](t, resp)
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != second.ID || docs[1].ID != first.ID {
		t.Fatalf("expected most recent first, got %s then %s", docs[0].Title, docs[1].Title)
	}
}

func TestHealthReportsHubCounts(t *testing.T) {
	ts, _ := startTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	health := decodeJSON[HealthResponse](t, resp)
	if health.Status != "ok" {
		t.Fatalf("unexpected status: %+v", health)
	}
	if health.ActiveDocuments != 0 || health.TotalUsers != 0 {
		t.Fatalf("expected empty hub, got %+v", health)
	}
}
