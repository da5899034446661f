// AngelaMos | 2026
// response_test.go

package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOK_WrapsDataInEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	OK(rec, map[string]string{"city": "Kazan"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Kazan", body["data"].(map[string]any)["city"])
}

func TestJSONError_MapsTaxonomyStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONError(rec, errors.New("wrapped: "+ErrNoOpenReception.Error()))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	JSONError(rec, ErrNoOpenReception)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NO_OPEN_RECEPTION", body["error"].(map[string]any)["code"])
}

func TestJSONError_ExpiredTokenIsUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONError(rec, ErrTokenExpired)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaginated_ComputesTotalPages(t *testing.T) {
	rec := httptest.NewRecorder()

	Paginated(rec, []int{1, 2, 3}, 2, 10, 31)

	body := decodeBody(t, rec)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(10), pagination["page_size"])
	assert.Equal(t, float64(31), pagination["total"])
	assert.Equal(t, float64(4), pagination["total_pages"])
}

func TestPaginated_EmptyPageKeepsDataArray(t *testing.T) {
	rec := httptest.NewRecorder()

	Paginated(rec, []int{}, 1, 10, 0)

	body := decodeBody(t, rec)
	assert.NotNil(t, body["data"])
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(0), pagination["total_pages"])
}
