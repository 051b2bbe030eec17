package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoutesRequireAuth(t *testing.T) {
	resp := doJSON(fileRouter, "GET", "/file/list", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "NO_BEARER_TOKEN", decodeBody(t, resp)["error"])
}

func TestFileRoundTrip(t *testing.T) {
	bearer, _ := signup(t, "79170000001", "secret")
	headers := map[string]string{"bearer-token": bearer}
	content := []byte("file round trip payload \x00\x01\x02")

	resp := doMultipart(t, "POST", "/file/upload", "report.pdf", "application/pdf", content, headers)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	uploaded := decodeBody(t, resp)

	fileID := uploaded["fileId"].(string)
	_, err := uuid.Parse(fileID)
	assert.NoError(t, err)
	assert.Equal(t, "report.pdf", uploaded["fileName"])
	assert.Equal(t, "application/pdf", uploaded["mimeType"])
	assert.Equal(t, float64(len(content)), uploaded["fileSize"])

	// Download returns byte-identical content under the stored name.
	download := doJSON(fileRouter, "GET", "/file/"+fileID+"/download", nil, headers)
	require.Equal(t, http.StatusOK, download.Code)
	assert.Equal(t, content, download.Body.Bytes())
	assert.Contains(t, download.Header().Get("Content-Disposition"), "report.pdf")
	assert.Equal(t, "application/pdf", download.Header().Get("Content-Type"))

	// Get returns the same summary as the upload response.
	get := doJSON(fileRouter, "GET", "/file/"+fileID, nil, headers)
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, uploaded["fileName"], decodeBody(t, get)["fileName"])
}

func TestFileUpdateReplacesContentAndMetadata(t *testing.T) {
	bearer, _ := signup(t, "79170000002", "secret")
	headers := map[string]string{"bearer-token": bearer}

	resp := doMultipart(t, "POST", "/file/upload", "old.txt", "text/plain", []byte("old content"), headers)
	require.Equal(t, http.StatusOK, resp.Code)
	fileID := decodeBody(t, resp)["fileId"].(string)

	newContent := []byte("entirely new content, longer than before")
	update := doMultipart(t, "PUT", "/file/update/"+fileID, "new.txt", "text/plain", newContent, headers)
	require.Equal(t, http.StatusOK, update.Code, update.Body.String())
	updated := decodeBody(t, update)

	assert.Equal(t, fileID, updated["fileId"])
	assert.Equal(t, "new.txt", updated["fileName"])
	assert.Equal(t, float64(len(newContent)), updated["fileSize"])

	download := doJSON(fileRouter, "GET", "/file/"+fileID+"/download", nil, headers)
	require.Equal(t, http.StatusOK, download.Code)
	assert.Equal(t, newContent, download.Body.Bytes())
}

func TestFileDelete(t *testing.T) {
	bearer, _ := signup(t, "79170000003", "secret")
	headers := map[string]string{"bearer-token": bearer}

	resp := doMultipart(t, "POST", "/file/upload", "doomed.txt", "text/plain", []byte("doomed"), headers)
	require.Equal(t, http.StatusOK, resp.Code)
	fileID := decodeBody(t, resp)["fileId"].(string)

	del := doJSON(fileRouter, "DELETE", "/file/delete/"+fileID, nil, headers)
	require.Equal(t, http.StatusOK, del.Code)
	assert.Equal(t, "{}", del.Body.String())

	get := doJSON(fileRouter, "GET", "/file/"+fileID, nil, headers)
	assert.Equal(t, http.StatusBadRequest, get.Code)
	body := decodeBody(t, get)
	assert.Equal(t, "INVALID_FILE_ID", body["error"])
	assert.Equal(t, fileID, body["fileId"])

	download := doJSON(fileRouter, "GET", "/file/"+fileID+"/download", nil, headers)
	assert.Equal(t, http.StatusBadRequest, download.Code)
}

func TestUploadWithoutFileField(t *testing.T) {
	bearer, _ := signup(t, "79170000004", "secret")

	resp := doJSON(fileRouter, "POST", "/file/upload", nil, map[string]string{"bearer-token": bearer})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "NO_FILE_ATTACHED", decodeBody(t, resp)["error"])
}

func TestFileListPagination(t *testing.T) {
	bearer, _ := signup(t, "79170000005", "secret")
	headers := map[string]string{"bearer-token": bearer}

	names := []string{"first.txt", "second.txt", "third.txt"}
	for _, name := range names {
		resp := doMultipart(t, "POST", "/file/upload", name, "text/plain", []byte(name), headers)
		require.Equal(t, http.StatusOK, resp.Code)
		time.Sleep(5 * time.Millisecond)
	}

	resp := doJSON(fileRouter, "GET", "/file/list?page=1&list_size=2", nil, headers)
	require.Equal(t, http.StatusOK, resp.Code)

	var page []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	require.Len(t, page, 2)
	// Newest upload first.
	assert.Equal(t, "third.txt", page[0]["fileName"])
	assert.Equal(t, "second.txt", page[1]["fileName"])

	resp = doJSON(fileRouter, "GET", "/file/list?page=2&list_size=2", nil, headers)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	assert.GreaterOrEqual(t, len(page), 1)
}

func TestGetUnknownFile(t *testing.T) {
	bearer, _ := signup(t, "79170000006", "secret")

	resp := doJSON(fileRouter, "GET", "/file/"+uuid.NewString(), nil, map[string]string{"bearer-token": bearer})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "INVALID_FILE_ID", decodeBody(t, resp)["error"])
}
