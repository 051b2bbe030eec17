package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"filevault/api/route"
	"filevault/common"
	"filevault/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	fileRouter    *gin.Engine
	messageRouter *gin.Engine
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "filevault-handler-test")
	if err != nil {
		panic(err)
	}
	common.SQLitePath = filepath.Join(dir, "test.db")
	common.UploadPath = filepath.Join(dir, "files")
	if err := os.MkdirAll(common.UploadPath, 0o755); err != nil {
		panic(err)
	}

	if err := model.InitDB(&model.User{}, &model.Session{}, &model.File{}, &model.ClientMessage{}); err != nil {
		panic(err)
	}

	fileRouter = gin.New()
	route.SetFileRouter(fileRouter)
	messageRouter = gin.New()
	route.SetMessageRouter(messageRouter)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func doJSON(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func signup(t *testing.T, userID, password string) (bearerToken, refreshToken string) {
	t.Helper()
	resp := doJSON(fileRouter, "POST", "/signup", gin.H{"userId": userID, "password": password}, nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	body := decodeBody(t, resp)
	return body["bearerToken"].(string), body["refreshToken"].(string)
}

// doMultipart sends a request with the given content under the `file`
// multipart form field.
func doMultipart(t *testing.T, method, path, filename, contentType string, content []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		partHeader.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	resp := httptest.NewRecorder()
	fileRouter.ServeHTTP(resp, req)
	return resp
}
