package flickr

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenscout/lenscout-cli/internal/adapters/driven/cache"
	"github.com/lenscout/lenscout-cli/internal/adapters/driven/fetch"
	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

const testEndpoint = "https://api.flickr.test/services/rest/"

// fakeFetcher records calls and serves canned bodies per method.
type fakeFetcher struct {
	bodies map[string]string
	errs   map[string]error
	calls  []url.Values
}

func (f *fakeFetcher) FetchAPI(_ context.Context, _ string, params url.Values) (json.RawMessage, error) {
	f.calls = append(f.calls, params)
	method := params.Get("method")
	if err := f.errs[method]; err != nil {
		return nil, err
	}
	return json.RawMessage(f.bodies[method]), nil
}

const searchBody = `{
  "photos": {
    "page": 1,
    "photo": [
      {"id": "111", "owner": "a", "secret": "s1", "server": "65535", "farm": 66, "title": "Skogafoss"},
      {"id": "222", "owner": "b", "secret": "s2", "server": "7", "farm": "5", "title": "Vik"}
    ]
  },
  "stat": "ok"
}`

func newTestClient(t *testing.T, f *fakeFetcher) *Client {
	t.Helper()
	c, err := NewClient(f, Config{APIKey: "test-api-key", Endpoint: testEndpoint})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(&fakeFetcher{}, Config{})
	assert.ErrorIs(t, err, domain.ErrAPIKeyMissing)
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(&fakeFetcher{}, Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAPIEndpoint, c.cfg.Endpoint)
	assert.Equal(t, domain.DefaultPerPage, c.cfg.PerPage)
}

func TestSearchPhotos(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{MethodSearch: searchBody}}
	c := newTestClient(t, f)

	photos, err := c.SearchPhotos(context.Background(), " iceland ")
	require.NoError(t, err)

	require.Len(t, photos, 2)
	assert.Equal(t, domain.Photo{ID: "111", Server: "65535", Farm: "66", Secret: "s1", Title: "Skogafoss"}, photos[0])
	assert.Equal(t, "5", photos[1].Farm)

	require.Len(t, f.calls, 1)
	params := f.calls[0]
	assert.Equal(t, MethodSearch, params.Get("method"))
	assert.Equal(t, "iceland", params.Get("tags"))
	assert.Equal(t, "30", params.Get("per_page"))
	assert.Equal(t, "json", params.Get("format"))
	assert.Equal(t, "1", params.Get("nojsoncallback"))
	assert.Equal(t, "test-api-key", params.Get("api_key"))
}

func TestSearchPhotos_EmptyKeyword(t *testing.T) {
	c := newTestClient(t, &fakeFetcher{})
	_, err := c.SearchPhotos(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchPhotos_MissingWrapper(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{MethodSearch: `{"stat":"ok"}`}}
	c := newTestClient(t, f)

	_, err := c.SearchPhotos(context.Background(), "paris")
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestSearchPhotos_FetchErrorPropagates(t *testing.T) {
	fetchErr := &domain.FetchError{URL: testEndpoint, StatusCode: 503}
	f := &fakeFetcher{errs: map[string]error{MethodSearch: fetchErr}}
	c := newTestClient(t, f)

	_, err := c.SearchPhotos(context.Background(), "paris")

	var got *domain.FetchError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 503, got.StatusCode)
}

func TestGetExif_UnavailableIsEmpty(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{
		MethodGetExif: &APIError{Code: CodePermissionDenied, Message: "Permission denied"},
	}}
	c := newTestClient(t, f)

	sample, err := c.GetExif(context.Background(), "111")

	require.NoError(t, err)
	assert.True(t, sample.Empty())
	assert.Equal(t, "111", sample.PhotoID)
	assert.Equal(t, "111", f.calls[0].Get("photo_id"))
}

func TestGetExif_InvalidKeyFails(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{
		MethodGetExif: &APIError{Code: CodeInvalidAPIKey, Message: "Invalid API Key"},
	}}
	c := newTestClient(t, f)

	_, err := c.GetExif(context.Background(), "111")

	assert.True(t, IsInvalidKey(err))
}

func TestCheckEnvelope(t *testing.T) {
	assert.NoError(t, CheckEnvelope([]byte(`{"stat":"ok"}`)))
	assert.NoError(t, CheckEnvelope([]byte(`{"photos":{}}`)))

	err := CheckEnvelope([]byte(`{"stat":"fail","code":100,"message":"Invalid API Key (Key has invalid format)"}`))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 100, apiErr.Code)
	assert.True(t, IsInvalidKey(err))
}
const exifBody = `{
  "photo": {
    "id": "222",
    "camera": "Canon EOS 5D Mark IV",
    "exif": [
      {"tagspace": "IFD0", "tag": "Make", "label": "Make", "raw": {"_content": "Canon"}},
      {"tagspace": "IFD0", "tag": "Model", "label": "Model", "raw": {"_content": "Canon EOS 5D Mark IV"}},
      {"tagspace": "ExifIFD", "tag": "FocalLength", "label": "Focal Length", "raw": {"_content": "35.0 mm"}},
      {"tagspace": "ExifIFD", "tag": "FocalLengthIn35mmFormat", "label": "Focal Length (35mm format)", "raw": {"_content": "35 mm"}}
    ]
  },
  "stat": "ok"
}`

func TestExtractExif(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantFocal *string
		wantMake  *string
		wantModel *string
	}{
		{
			name:      "reads exact tags from raw content",
			body:      exifBody,
			wantFocal: strPtr("35 mm"),
			wantMake:  strPtr("Canon"),
			wantModel: strPtr("Canon EOS 5D Mark IV"),
		},
		{
			name: "missing photo wrapper",
			body: `{"stat":"ok"}`,
		},
		{
			name: "photo without exif list",
			body: `{"photo":{"id":"222"},"stat":"ok"}`,
		},
		{
			name: "first repeated tag wins",
			body: `{"photo":{"exif":[
				{"tag":"Make","raw":{"_content":"NIKON CORPORATION"}},
				{"tag":"Make","raw":{"_content":"Nikon"}}
			]}}`,
			wantMake: strPtr("NIKON CORPORATION"),
		},
		{
			name: "focal length without 35mm equivalent is ignored",
			body: `{"photo":{"exif":[
				{"tag":"FocalLength","raw":{"_content":"50.0 mm"}},
				{"tag":"model","raw":{"_content":"lowercase tag"}}
			]}}`,
		},
		{
			name:      "label is not used for matching",
			body:      `{"photo":{"exif":[{"tag":"Other","label":"Make","raw":{"_content":"x"}},{"tag":"FocalLengthIn35mmFormat","raw":{"_content":"24 mm"}}]}}`,
			wantFocal: strPtr("24 mm"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample, err := ExtractExif("222", []byte(tt.body))
			require.NoError(t, err)

			assert.Equal(t, "222", sample.PhotoID)
			assert.Equal(t, tt.wantFocal, sample.FocalLength35mm)
			assert.Equal(t, tt.wantMake, sample.Make)
			assert.Equal(t, tt.wantModel, sample.Model)
		})
	}
}

func TestExtractExif_MalformedBody(t *testing.T) {
	_, err := ExtractExif("222", []byte(`{"photo":`))
	assert.Error(t, err)
}

func strPtr(s string) *string { return &s }

// TestClient_ThroughFetcher exercises the client against the real fetcher
// and cache with a mocked transport.
func TestClient_ThroughFetcher(t *testing.T) {
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	f := fetch.New(c, fetch.WithDelay(0), fetch.WithAPICheck(CheckEnvelope))
	mock := httpmock.NewMockTransport()
	f.SetTransport(mock)

	mock.RegisterResponderWithQuery("GET", testEndpoint, map[string]string{
		"method":         MethodSearch,
		"tags":           "iceland",
		"per_page":       "30",
		"api_key":        "test-api-key",
		"format":         "json",
		"nojsoncallback": "1",
	}, httpmock.NewStringResponder(200, searchBody))
	mock.RegisterResponderWithQuery("GET", testEndpoint, map[string]string{
		"method":         MethodGetExif,
		"photo_id":       "111",
		"api_key":        "test-api-key",
		"format":         "json",
		"nojsoncallback": "1",
	}, httpmock.NewStringResponder(200, `{"stat":"fail","code":2,"message":"Permission denied"}`))
	mock.RegisterResponderWithQuery("GET", testEndpoint, map[string]string{
		"method":         MethodGetExif,
		"photo_id":       "222",
		"api_key":        "test-api-key",
		"format":         "json",
		"nojsoncallback": "1",
	}, httpmock.NewStringResponder(200, exifBody))

	client, err := NewClient(f, Config{APIKey: "test-api-key", Endpoint: testEndpoint})
	require.NoError(t, err)

	ctx := context.Background()
	photos, err := client.SearchPhotos(ctx, "iceland")
	require.NoError(t, err)
	assert.Len(t, photos, 2)

	sample, err := client.GetExif(ctx, "111")
	require.NoError(t, err)
	assert.True(t, sample.Empty())

	sample, err = client.GetExif(ctx, "222")
	require.NoError(t, err)
	require.NotNil(t, sample.FocalLength35mm)
	assert.Equal(t, "35 mm", *sample.FocalLength35mm)
	require.NotNil(t, sample.Make)
	assert.Equal(t, "Canon", *sample.Make)
	require.NotNil(t, sample.Model)
	assert.Equal(t, "Canon EOS 5D Mark IV", *sample.Model)

	// The search and the populated EXIF body are cached; the failure is not.
	assert.Equal(t, 2, c.Len())

	_, err = client.SearchPhotos(ctx, "iceland")
	require.NoError(t, err)
	_, err = client.GetExif(ctx, "222")
	require.NoError(t, err)
	assert.Equal(t, 3, mock.GetTotalCallCount())
}
