package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init("info", "text", nil) })

	cases := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"warn_padded", " warn ", logrus.WarnLevel},
		{"invalid_falls_back", "loud", logrus.InfoLevel},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Init(c.level, "text", &bytes.Buffer{})
			if Log.GetLevel() != c.want {
				t.Fatalf("expected level %v, got %v", c.want, Log.GetLevel())
			}
		})
	}
}

func TestInitJSON(t *testing.T) {
	t.Cleanup(func() { Init("info", "text", nil) })

	var buf bytes.Buffer
	Init("info", "JSON", &buf)
	Entity(7).WithField("ability", "bite").Info("started")

	var line map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if line["ability"] != "bite" || line["msg"] != "started" {
		t.Fatalf("unexpected fields: %v", line)
	}
	if v, ok := line["entity"].(float64); !ok || v != 7 {
		t.Fatalf("expected entity 7, got %v", line["entity"])
	}
}
