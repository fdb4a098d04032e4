package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/achilleasa/scenedesc/scene"
	"github.com/tidwall/sjson"
)

type editFn func(doc string) (string, error)

func set(path string, value interface{}) editFn {
	return func(doc string) (string, error) { return sjson.Set(doc, path, value) }
}

func setRaw(path, raw string) editFn {
	return func(doc string) (string, error) { return sjson.SetRaw(doc, path, raw) }
}

func del(path string) editFn {
	return func(doc string) (string, error) { return sjson.Delete(doc, path) }
}

func TestLoadErrors(t *testing.T) {
	type spec struct {
		edit     editFn
		errType  string
		expError string
	}
	specs := []spec{
		// references
		{set("views.default.camera", "side"), "reference", `reference error: views.default.camera [line 17]: undefined cameras entry "side"`},
		{set("objects.ball_glass.material", "crystal"), "reference", `objects.ball_glass.material [line 39]: undefined materials entry "crystal"`},
		// ranges
		{set("cameras.main.near", 1000), "range", "cameras.main.near [line 11]: near (1000) must be less than far (1000)"},
		{set("cameras.main.near", 2000), "range", "near (2000) must be less than far (1000)"},
		{set("cameras.main.near", 0), "range", "cameras.main.near [line 11]: must be positive; got 0"},
		{set("cameras.main.far", -1), "range", "cameras.main.far [line 12]: must be positive; got -1"},
		{set("cameras.main.width", 0), "range", "cameras.main.width [line 8]: must be a positive integer; got 0"},
		{set("cameras.main.height", -10), "range", "must be a positive integer; got -10"},
		{set("cameras.main.fov", 180), "range", "must be in the range (0, 180) degrees; got 180"},
		{set("cameras.main.transform.scale", 0), "range", "cameras.main.transform.scale [line 7]: must be positive; got 0"},
		{set("views.default.samples", -3), "range", "views.default.samples [line 18]: must be a positive integer; got -3"},
		{set("views.default.samples", 0), "range", "must be a positive integer; got 0"},
		{set("views.default.depth", -1), "range", "views.default.depth [line 19]: must be a non-negative integer; got -1"},
		{set("objects.ball_mirror.radius", -0.5), "range", "objects.ball_mirror.radius [line 27]: must be positive; got -0.5"},
		{setRaw("objects.floor.extents", "[3, 0, 3]"), "range", "objects.floor.extents [line 43]: components must be positive"},
		{setRaw("lights.light_white.colour", "[1, -1, 1]"), "range", "lights.light_white.colour [line 130]: components must be non-negative"},
		{set("lights.light_white.radius", 0), "range", "lights.light_white.radius [line 131]: must be positive; got 0"},
		// parse errors
		{setRaw("objects.floor.extents", "[3, 0.01]"), "parse", "objects.floor.extents [line 43]: expected an array of 3 numbers; got 2 elements"},
		{setRaw("objects.floor.extents", "[3, 0.01, 3, 1]"), "parse", "expected an array of 3 numbers; got 4 elements"},
		{set("objects.floor.extents", 3), "parse", "objects.floor.extents [line 43]: expected an array of 3 numbers; got number 3"},
		{setRaw("objects.floor.extents", `[3, "0.01", 3]`), "parse", `objects.floor.extents [line 43]: component 1: expected a number; got string "0.01"`},
		{setRaw("cameras.main.width", "99999999999999999999"), "range", "cameras.main.width [line 8]: value 1e+20 is too large"},
		{set("cameras.main.width", 10.5), "parse", "cameras.main.width [line 8]: expected an integer; got number 10.5"},
		{set("cameras.main.fov", "wide"), "parse", `cameras.main.fov [line 10]: expected a number; got string "wide"`},
		{set("views.default.camera", 7), "parse", "views.default.camera [line 17]: expected a string; got number 7"},
		{set("views.default.camera", ""), "parse", "views.default.camera [line 17]: expected a non-empty name"},
		{del("objects.floor.material"), "parse", "objects.floor.material [line 41]: missing required field"},
		{del("cameras.main.transform.position"), "parse", "cameras.main.transform.position [line 5]: missing required field"},
		{del("materials.white.texture"), "parse", "materials.white.texture [line 97]: missing required field"},
		{del("materials.checker.texture.filename"), "parse", "materials.checker.texture.filename [line 120]: missing required field"},
		{set("objects.ball_glass.colour", "red"), "parse", "objects.ball_glass.colour [line 39]: unknown field"},
		{setRaw("objects.ball_glass.extents", "[1, 1, 1]"), "parse", "objects.ball_glass.extents [line 39]: unknown field"},
		{setRaw("materials.mirror.texture", `{"type": "Constant", "colour": [1, 1, 1]}`), "parse", "materials.mirror.texture [line 92]: unknown field"},
		{set("cameras.main.transform", "origin"), "parse", `cameras.main.transform [line 5]: expected an object; got string "origin"`},
		{setRaw("views.default", "[]"), "parse", "views.default [line 16]: expected an object; got array with 0 elements"},
		{del("lights"), "parse", "parse error: lights: missing required section"},
		{setRaw("textures", "{}"), "parse", "parse error: textures [line 133]: unknown section"},
		{setRaw("objects", "[]"), "parse", "parse error: objects [line 24]: expected an object; got array with 0 elements"},
		// unsupported kinds
		{set("objects.ball_glass.shape", "Cone"), "unsupported", `objects.ball_glass.shape [line 34]: "Cone"; expected one of Ball, Cuboid`},
		{set("materials.glass.type", "Metal"), "unsupported", `materials.glass.type [line 95]: "Metal"; expected one of Mirror, Glass, Diffuse`},
		{set("materials.white.texture.type", "Noise"), "unsupported", `materials.white.texture.type [line 100]: "Noise"; expected one of Constant, Image`},
		{set("views.default.integrator", "Bidirectional"), "unsupported", `"Bidirectional"; expected one of Path, Whitted`},
		{set("views.default.renderer", "Progressive"), "unsupported", `"Progressive"; expected one of Standard`},
		{set("cameras.main.type", "Orthographic"), "unsupported", `cameras.main.type [line 4]: "Orthographic"; expected one of Perspective`},
		{set("lights.light_white.type", "Spot"), "unsupported", `"Spot"; expected one of Point, Directional`},
		{set("objects.ball_glass.shape", "ball"), "unsupported", `"ball"; expected one of Ball, Cuboid`},
	}

	base := string(mustReadFile(t, "cornell.json"))
	for idx, s := range specs {
		doc, err := s.edit(base)
		if err != nil {
			t.Fatalf("[spec %d] could not edit document: %v", idx, err)
		}

		_, err = Load([]byte(doc), JSON, Options{})
		if err == nil {
			t.Fatalf("[spec %d] expected an error", idx)
		}

		var (
			parseErr       *scene.ParseError
			refErr         *scene.ReferenceError
			rangeErr       *scene.RangeError
			unsupportedErr *scene.UnsupportedTypeError
		)
		var matched bool
		switch s.errType {
		case "parse":
			matched = errors.As(err, &parseErr)
		case "reference":
			matched = errors.As(err, &refErr)
		case "range":
			matched = errors.As(err, &rangeErr)
		case "unsupported":
			matched = errors.As(err, &unsupportedErr)
		}
		if !matched {
			t.Fatalf("[spec %d] expected a %s error; got %T: %v", idx, s.errType, err, err)
		}
		if !strings.Contains(err.Error(), s.expError) {
			t.Fatalf("[spec %d] expected error to contain %q; got %q", idx, s.expError, err.Error())
		}
	}
}

func TestReferenceErrorFields(t *testing.T) {
	doc, err := sjson.Set(string(mustReadFile(t, "cornell.json")), "objects.wall_left.material", "green")
	if err != nil {
		t.Fatal(err)
	}

	_, err = Load([]byte(doc), JSON, Options{})
	var refErr *scene.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected a ReferenceError; got %v", err)
	}
	if refErr.Collection != scene.Objects || refErr.Entity != "wall_left" || refErr.Target != scene.Materials || refErr.Name != "green" {
		t.Fatalf("expected error naming object wall_left and material green; got %+v", refErr)
	}
}

func TestDuplicateNames(t *testing.T) {
	specs := []struct {
		doc      string
		expError string
	}{
		{
			`{"cameras": {}, "views": {}, "objects": {}, "lights": {},
"materials": {
  "glass": {"type": "Glass"},
  "glass": {"type": "Mirror"}
}}`,
			"parse error: materials.glass [line 4]: duplicate name; first defined at line 3",
		},
		{
			`{"cameras": {}, "views": {}, "objects": {}, "lights": {}, "materials": {
  "glass": {"type": "Glass", "type": "Mirror"}
}}`,
			"parse error: materials.glass.type [line 2]: duplicate field; first defined at line 2",
		},
		{
			`{"cameras": {}, "views": {}, "objects": {}, "lights": {}, "materials": {},
"lights": {}}`,
			"parse error: lights [line 2]: duplicate section; first defined at line 1",
		},
	}

	for idx, s := range specs {
		_, err := Load([]byte(s.doc), JSON, Options{})
		if err == nil || err.Error() != s.expError {
			t.Fatalf("[spec %d] expected error %s; got %v", idx, s.expError, err)
		}
	}
}

func TestEmptyScene(t *testing.T) {
	sc, err := Load([]byte(`{"cameras": {}, "views": {}, "objects": {}, "materials": {}, "lights": {}}`), JSON, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range scene.AllCollections {
		if sc.Len(c) != 0 {
			t.Fatalf("expected no %s; got %d", c, sc.Len(c))
		}
	}
}

func TestMalformedDocuments(t *testing.T) {
	specs := []struct {
		doc      string
		format   Format
		expError string
	}{
		{`{"cameras": `, JSON, "parse error: document: malformed JSON document"},
		{`[1, 2, 3]`, JSON, "parse error: document [line 1]: expected the document root to be an object; got array with 3 elements"},
		{"cameras: [\n", YAML, "parse error: document: malformed YAML document"},
		{"", YAML, "parse error: document: empty YAML document"},
		{"just a string", YAML, `expected the document root to be an object; got string "just a string"`},
		{"{\"cameras\": {\"main_\xff\": {}}}", JSON, "parse error: document: malformed JSON document: invalid UTF-8"},
		{"cameras:\n  main_\xff: {}\n", YAML, "parse error: document: malformed YAML document"},
	}

	for idx, s := range specs {
		_, err := Load([]byte(s.doc), s.format, Options{})
		var parseErr *scene.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("[spec %d] expected a ParseError; got %v", idx, err)
		}
		if !strings.Contains(err.Error(), s.expError) {
			t.Fatalf("[spec %d] expected error to contain %q; got %q", idx, s.expError, err.Error())
		}
	}
}

func TestOptionalTransformFields(t *testing.T) {
	doc := string(mustReadFile(t, "cornell.json"))
	doc, _ = sjson.SetRaw(doc, "objects.floor.transform.rotation", "[0, 1.5707963267948966, 0]")
	doc, _ = sjson.Set(doc, "objects.floor.transform.scale", 2.5)

	sc, err := Load([]byte(doc), JSON, Options{})
	if err != nil {
		t.Fatal(err)
	}

	floor, _ := sc.Object("floor")
	if floor.Transform.Scale != 2.5 || floor.Transform.Rotation[1] != 1.5707963267948966 {
		t.Fatalf("expected floor rotation and scale to be set; got %+v", floor.Transform)
	}

	ceiling, _ := sc.Object("ceiling")
	if ceiling.Transform.Scale != 1 || ceiling.Transform.Rotation.Len() != 0 {
		t.Fatalf("expected ceiling transform to default to identity rotation and scale; got %+v", ceiling.Transform)
	}
}

func TestDirectionalLight(t *testing.T) {
	doc, _ := sjson.SetRaw(
		string(mustReadFile(t, "cornell.json")),
		"lights.sun",
		`{"type": "Directional", "direction": [0, -1, 0], "colour": [2, 2, 1.5]}`,
	)

	sc, err := Load([]byte(doc), JSON, Options{})
	if err != nil {
		t.Fatal(err)
	}
	sun, err := sc.Light("sun")
	if err != nil {
		t.Fatal(err)
	}
	if sun.Type != scene.DirectionalLight || sun.Direction[1] != -1 || sun.Colour[0] != 2 {
		t.Fatalf("unexpected directional light: %+v", sun)
	}

	doc, _ = sjson.SetRaw(doc, "lights.sun.direction", "[0, 0, 0]")
	_, err = Load([]byte(doc), JSON, Options{})
	var rangeErr *scene.RangeError
	if !errors.As(err, &rangeErr) || rangeErr.Field != "direction" {
		t.Fatalf("expected a RangeError for a zero direction; got %v", err)
	}
}

func TestYAMLSpecificErrors(t *testing.T) {
	base := string(mustReadFile(t, "cornell.yaml"))

	specs := []struct {
		from, to string
		errType  string
		expError string
	}{
		{"fov: 90.0", "fov: .inf", "range", "cameras.main.fov [line 9]: value must be finite"},
		{"near: 0.01", "near: .nan", "range", "cameras.main.near [line 10]: value must be finite"},
		{"samples: 3", "samples: three", "parse", `views.default.samples [line 16]: expected a number; got string "three"`},
		{"width: 100", "width: 99999999999999999999", "range", "cameras.main.width [line 7]: value 1e+20 is too large"},
		{"width: 100", "width: 100.0", "parse", "cameras.main.width [line 7]: expected an integer; got number 100"},
		{"radius: 8.0", "radius: ~", "parse", "lights.light_white.radius [line 96]: expected a number; got null"},
		{"  glass:\n    type: Glass", "  glass:\n    type: Glass\n  glass:\n    type: Mirror", "parse", "glass"},
	}

	for idx, s := range specs {
		doc := strings.Replace(base, s.from, s.to, 1)
		if doc == base {
			t.Fatalf("[spec %d] edit did not apply", idx)
		}

		_, err := Load([]byte(doc), YAML, Options{})
		var (
			parseErr *scene.ParseError
			rangeErr *scene.RangeError
		)
		switch s.errType {
		case "parse":
			if !errors.As(err, &parseErr) {
				t.Fatalf("[spec %d] expected a ParseError; got %v", idx, err)
			}
		case "range":
			if !errors.As(err, &rangeErr) {
				t.Fatalf("[spec %d] expected a RangeError; got %v", idx, err)
			}
		}
		if !strings.Contains(err.Error(), s.expError) {
			t.Fatalf("[spec %d] expected error to contain %q; got %q", idx, s.expError, err.Error())
		}
	}
}
