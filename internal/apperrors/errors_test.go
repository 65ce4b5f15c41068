package apperrors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Validationf("bad wallet"), http.StatusBadRequest},
		{"not found", NotFoundf("commit missing"), http.StatusNotFound},
		{"upstream", Upstreamf("github 500"), http.StatusBadRequest},
		{"configuration", Configurationf("no key"), http.StatusBadRequest},
		{"parse", Parsef("no digits"), http.StatusBadRequest},
		{"foreign", stderrs.New("boom"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrapPreservesCauseAndCode(t *testing.T) {
	cause := stderrs.New("connection refused")
	err := Wrap(cause, CodeUpstream, "failed to fetch commit")

	assert.Equal(t, "failed to fetch commit: connection refused", err.Error())
	assert.True(t, stderrs.Is(err, cause))
	assert.True(t, Is(err, CodeUpstream))

	// survives fmt wrapping
	outer := fmt.Errorf("resolve: %w", err)
	assert.Equal(t, CodeUpstream, CodeOf(outer))
}

func TestWithOpIsCopyOnWrite(t *testing.T) {
	base := Configurationf("signing key not configured")
	tagged := WithOp(base, "sign")

	e, ok := As(tagged)
	require.True(t, ok)
	assert.Equal(t, "sign", e.Op())

	orig, ok := As(base)
	require.True(t, ok)
	assert.Empty(t, orig.Op())

	foreign := stderrs.New("x")
	assert.Same(t, foreign, WithOp(foreign, "sign"))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "not_found", CodeNotFound.String())
	assert.Equal(t, "configuration", CodeConfiguration.String())
	assert.Equal(t, "unknown", Code(99).String())
}

func TestDetail(t *testing.T) {
	wrapped := Wrap(stderrs.New("status 404: {\"message\":\"Not Found\"}"), CodeNotFound, "commit deadbeef not found in a/b")
	assert.Equal(t, "commit deadbeef not found in a/b", Detail(wrapped))
	assert.Equal(t, "plain failure", Detail(stderrs.New("plain failure")))
	assert.Empty(t, Detail(nil))
}
