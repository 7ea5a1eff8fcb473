package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"promptclient/config"
	"promptclient/prompt"
)

func TestRun_PrintsAnswer(t *testing.T) {
	received := make(chan prompt.GenerationRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req prompt.GenerationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received <- req
		io.WriteString(w, `{"response":"Molecular dynamics is a simulation technique..."}`)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.APIRoot = srv.URL

	var out bytes.Buffer
	run(context.Background(), &out, cfg)

	assert.Equal(t, "Molecular dynamics is a simulation technique...\n", out.String())

	req := <-received
	assert.Equal(t, examplePrompt, req.Prompt)
	assert.Equal(t, config.DefaultModel, req.Model)
}

func TestRun_PrintsError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := config.Default()
	cfg.APIRoot = url

	var out bytes.Buffer
	require.NotPanics(t, func() {
		run(context.Background(), &out, cfg)
	})

	assert.True(t, strings.HasPrefix(out.String(), prompt.ErrorPrefix))
}
