package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"fintrack/internal/api"
)

func TestRenderCurrentSheetFollowsTheClock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)

	var buf bytes.Buffer
	a := &app{
		client: api.NewClient(srv.URL, nil, log),
		log:    log,
		out:    &buf,
		// startup clock, a month behind the tick
		now: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
	}

	a.renderCurrentSheet(context.Background(), time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))

	out := buf.String()
	if !strings.Contains(out, "Monthly Expense Sheet — April 2024") {
		t.Errorf("sheet should follow the tick's month, got:\n%s", out)
	}
	if strings.Contains(out, "March") {
		t.Errorf("sheet should not be pinned to the startup month:\n%s", out)
	}
}
