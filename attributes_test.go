package cloudview

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadAttributesEmpty(t *testing.T) {
	a, err := LoadAttributes(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if a != DefaultAttributes() {
		t.Errorf("empty document = %+v, want defaults", a)
	}
}

func TestLoadAttributesOverrides(t *testing.T) {
	doc := `
count: 14
min_size: 120
max_size: 260
fade_in_enabled: true
fade_in_time_ms: 500
sky_color: "#0288D1"
animating: false
`
	a, err := LoadAttributes(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if a.Count != 14 || a.MinSize != 120 || a.MaxSize != 260 {
		t.Errorf("pool attributes = %+v", a)
	}
	if !a.FadeInEnabled || a.FadeInTimeMs != 500 || a.Animating {
		t.Errorf("animation attributes = %+v", a)
	}
	if a.BasePassTimeMs != DefaultPassTimeMs || a.PassTimeVarianceMs != DefaultPassTimeVarianceMs {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadAttributesMalformed(t *testing.T) {
	if _, err := LoadAttributes(strings.NewReader("count: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestNewFromAttributes(t *testing.T) {
	a := DefaultAttributes()
	a.Count = 3
	a.MinSize, a.MaxSize = 50, 60
	a.SkyColor = "#000000"

	v, err := NewFromAttributes(a)
	if err != nil {
		t.Fatal(err)
	}
	if v.CloudCount() != 3 || v.MinCloudSize() != 50 || v.MaxCloudSize() != 60 {
		t.Errorf("config = %d [%d, %d)", v.CloudCount(), v.MinCloudSize(), v.MaxCloudSize())
	}
	if v.Node().Color != (Color{0, 0, 0, 1}) {
		t.Errorf("sky = %+v", v.Node().Color)
	}
	if v.State() != StateAwaitingReadiness {
		t.Errorf("State = %v, want awaiting-readiness", v.State())
	}

	s := NewScene()
	s.Layout(testViewW, testViewH)
	s.Root().AddChild(v.Node())
	drawWithoutTarget(s)
	if !v.Animating() || len(v.Clouds()) != 3 {
		t.Errorf("animating = %v, clouds = %d", v.Animating(), len(v.Clouds()))
	}
}

func TestNewFromAttributesErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Attributes)
		want   string
	}{
		{"count", func(a *Attributes) { a.Count = -1 }, "attribute count"},
		{"range", func(a *Attributes) { a.MinSize, a.MaxSize = 5, 5 }, "min_size/max_size"},
		{"base", func(a *Attributes) { a.BasePassTimeMs = 0 }, "base_pass_time_ms"},
		{"variance", func(a *Attributes) { a.PassTimeVarianceMs = -1 }, "pass_time_variance_ms"},
		{"fade", func(a *Attributes) { a.FadeInTimeMs = -1 }, "fade_in_time_ms"},
	}
	for _, tt := range tests {
		a := DefaultAttributes()
		tt.mutate(&a)
		_, err := NewFromAttributes(a)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", tt.name, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %q, want mention of %q", tt.name, err, tt.want)
		}
	}
}

func TestNewFromAttributesBadColor(t *testing.T) {
	a := DefaultAttributes()
	a.SkyColor = "blue"
	if _, err := NewFromAttributes(a); err == nil || !strings.Contains(err.Error(), "sky_color") {
		t.Errorf("err = %v", err)
	}
}

func TestNewFromAttributesImage(t *testing.T) {
	fsys := fstest.MapFS{"cloud.png": {Data: pngBytes(t)}}
	a := DefaultAttributes()
	a.Image = "cloud.png"

	v, err := NewFromAttributes(a, WithResources(fsys))
	if err != nil {
		t.Fatal(err)
	}
	if v.Image().Kind() != ImageResource || v.Image().Name() != "cloud.png" {
		t.Errorf("image = %v %q", v.Image().Kind(), v.Image().Name())
	}

	a.Image = "missing.png"
	if _, err := NewFromAttributes(a, WithResources(fsys)); err == nil {
		t.Error("expected error for a missing image")
	}
}
