package campaigns

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contact  string
		expected string
	}{
		{
			name:     "single placeholder",
			body:     "Hi {name}, welcome!",
			contact:  "Rajesh",
			expected: "Hi Rajesh, welcome!",
		},
		{
			name:     "repeated placeholder",
			body:     "{name}, this offer is for {name} only.",
			contact:  "Priya",
			expected: "Priya, this offer is for Priya only.",
		},
		{
			name:     "no placeholder",
			body:     "Generic announcement.",
			contact:  "Amit",
			expected: "Generic announcement.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.body, tt.contact); got != tt.expected {
				t.Errorf("Render() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStaticTemplateSource(t *testing.T) {
	source := NewStaticTemplateSource()

	templates, err := source.Templates(context.Background())
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}
	if len(templates) == 0 {
		t.Fatal("expected built-in templates")
	}
	for _, tmpl := range templates {
		if tmpl.ID == "" || tmpl.Name == "" || tmpl.Body == "" {
			t.Errorf("template %q has empty fields: %+v", tmpl.ID, tmpl)
		}
	}

	// Mutating the returned slice must not affect later calls.
	templates[0].Name = "mutated"
	again, err := source.Templates(context.Background())
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}
	if again[0].Name == "mutated" {
		t.Error("Templates should return a copy of the built-in set")
	}
}

func TestRemoteTemplateSourceFetches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "diwali", "name": "Diwali Offer", "category": "seasonal", "body": "<p>Happy Diwali, {name}!</p><script>alert(1)</script>"},
			{"id": "", "name": "broken", "body": "no id"},
			{"id": "gold-loan", "name": "Gold Loan", "body": "Dear {name}, unlock the value of your gold today."}
		]`))
	}))
	defer server.Close()

	source := NewRemoteTemplateSource(RemoteTemplateConfig{URL: server.URL})

	templates, err := source.Templates(context.Background())
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 usable templates, got %d", len(templates))
	}
	if templates[0].ID != "diwali" || templates[1].ID != "gold-loan" {
		t.Fatalf("unexpected template order: %+v", templates)
	}
	if templates[0].Body != "Happy Diwali, {name}!" {
		t.Errorf("expected HTML flattened, got %q", templates[0].Body)
	}
}

func TestRemoteTemplateSourceFallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := NewRemoteTemplateSource(RemoteTemplateConfig{URL: server.URL})

	templates, err := source.Templates(context.Background())
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}
	if len(templates) != len(defaultTemplates) {
		t.Fatalf("expected the static set on failure, got %d templates", len(templates))
	}
}

func TestRemoteTemplateSourceFallsBackOnEmptySet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "x", "name": "  ", "body": "<script>only script</script>"}]`))
	}))
	defer server.Close()

	source := NewRemoteTemplateSource(RemoteTemplateConfig{URL: server.URL})

	templates, err := source.Templates(context.Background())
	if err != nil {
		t.Fatalf("Templates returned error: %v", err)
	}
	if len(templates) != len(defaultTemplates) {
		t.Fatalf("expected the static set when nothing usable was returned, got %d", len(templates))
	}
}

func TestRemoteTemplateSourceCachesResponses(t *testing.T) {
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "welcome", "name": "Welcome", "body": "Hi {name}"}]`))
	}))
	defer server.Close()

	source := NewRemoteTemplateSource(RemoteTemplateConfig{
		URL:      server.URL,
		CacheTTL: time.Hour,
	})

	for i := 0; i < 3; i++ {
		if _, err := source.Templates(context.Background()); err != nil {
			t.Fatalf("Templates returned error: %v", err)
		}
	}

	if got := atomic.LoadInt64(&requests); got != 1 {
		t.Errorf("expected 1 upstream request, got %d", got)
	}
}
