package fiber_test

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/thiagodp/better-randstr/internal/logger/adapter/fiber"

	"github.com/thiagodp/better-randstr/internal/logger"
)

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	IP        net.IP `json:"IP"`
	Status    int    `json:"status"`
	URI       string `json:"URI"`
	Method    string `json:"method"`
	Host      string `json:"host"`
	App       string `json:"app"`
	Profile   string `json:"profile"`
	Generated int    `json:"generated"`
	Error     string `json:"error"`
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		config     adapter.Config
		want       *expectedLoggerJSONFormat
	}{
		{
			name:       "get /",
			targetPath: "/",
			config:     adapter.Config{Config: logger.Log{AppName: "randstr"}},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/",
				Method: fiber.MethodGet,
				Host:   "example.com",
				App:    "randstr",
			},
		},
		{
			name:       "multiple slashes are kept in the log",
			targetPath: "//test",
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusNotFound,
				URI:    "//test",
				Method: fiber.MethodGet,
				Host:   "example.com",
				Error:  "Cannot GET //test",
			},
		},
		{
			name:       "query string",
			targetPath: "/?length=5,10&chars=abc",
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/?length=5,10&chars=abc",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "handler locals",
			targetPath: "/profile",
			want: &expectedLoggerJSONFormat{
				IP:        net.ParseIP("0.0.0.0"),
				Status:    fiber.StatusOK,
				URI:       "/profile",
				Method:    fiber.MethodGet,
				Host:      "example.com",
				Profile:   "pin",
				Generated: 3,
			},
		},
		{
			name:       "handler error",
			targetPath: "/fail",
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusUnprocessableEntity,
				URI:    "/fail",
				Method: fiber.MethodGet,
				Host:   "example.com",
				Error:  "too many attempts",
			},
		},
		{
			name:       "skipped uri",
			targetPath: "/checkalive",
			config: adapter.Config{
				Config:   logger.Log{DisableCheckAlive: true},
				SkipURIs: []string{"/checkalive"},
			},
		},
		{
			name:       "skip list without DisableCheckAlive",
			targetPath: "/checkalive",
			config:     adapter.Config{SkipURIs: []string{"/checkalive"}},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/checkalive",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "next skips the middleware",
			targetPath: "/",
			config: adapter.Config{
				Next: func(*fiber.Ctx) bool { return true },
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.config.Output = &buf

			resp := testMiddlewareHelper(t, tt.targetPath, tt.config)

			if tt.want == nil {
				assert.Empty(t, buf.String())
				return
			}

			assert.NotEmpty(t, resp.Header.Get("X-Performance"))

			var decodedOutput expectedLoggerJSONFormat
			require.NoError(t, json.Unmarshal(buf.Bytes(), &decodedOutput), buf.String())

			assert.Equal(t, tt.want.Host, decodedOutput.Host)
			assert.Equal(t, tt.want.Method, decodedOutput.Method)
			assert.Equal(t, tt.want.Status, decodedOutput.Status)
			assert.Equal(t, tt.want.IP, decodedOutput.IP)
			assert.Equal(t, tt.want.URI, decodedOutput.URI)
			assert.Equal(t, tt.want.App, decodedOutput.App)
			assert.Equal(t, tt.want.Profile, decodedOutput.Profile)
			assert.Equal(t, tt.want.Generated, decodedOutput.Generated)
			assert.Equal(t, tt.want.Error, decodedOutput.Error)
		})
	}
}

func TestNewWithoutOutputs(t *testing.T) {
	resp := testMiddlewareHelper(t, "/", adapter.Config{})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestErrorSetsCacheControl(t *testing.T) {
	resp := testMiddlewareHelper(t, "/fail", adapter.Config{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, adapter.ConfigDefault.CacheControlError, resp.Header.Get(fiber.HeaderCacheControl))
}

type response struct {
	StatusCode int
	Header     interface{ Get(string) string }
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) response {
	t.Helper()

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapterConfig))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})

	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	app.Get("/profile", func(ctx *fiber.Ctx) error {
		ctx.Locals(adapter.LocalProfile, "pin")
		ctx.Locals(adapter.LocalGenerated, 3)

		return ctx.SendString("123456")
	})

	app.Get("/fail", func(*fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "too many attempts")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	return response{StatusCode: resp.StatusCode, Header: resp.Header}
}
