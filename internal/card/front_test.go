package card

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeFrontLegacyText(t *testing.T) {
	raw := "what is the speed of light?"
	got := DecodeFront(raw)
	want := FrontSchema{Version: 1, Kind: KindBasic, Score: 1, Prompt: raw}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeFront(%q) = %+v, want %+v", raw, got, want)
	}
}

func TestDecodeFrontStructured(t *testing.T) {
	raw := `{"version":1,"kind":"single_choice","score":2,"prompt":"pick one","options":["red","green"],"media":{"image":"https://x/img.png"}}`
	got := DecodeFront(raw)
	if got.Kind != KindSingleChoice || got.Score != 2 || got.Prompt != "pick one" {
		t.Fatalf("unexpected schema: %+v", got)
	}
	if !reflect.DeepEqual(got.Options, []string{"red", "green"}) {
		t.Errorf("options = %v", got.Options)
	}
	if got.Media == nil || got.Media.Image != "https://x/img.png" || got.Media.Audio != "" {
		t.Errorf("media = %+v", got.Media)
	}
}

func TestDecodeFrontDefensiveDefaults(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want FrontSchema
	}{
		{
			name: "score not a number",
			raw:  `{"kind":"basic","score":"high","prompt":"q"}`,
			want: FrontSchema{Version: 1, Kind: KindBasic, Score: 1, Prompt: "q"},
		},
		{
			name: "prompt missing",
			raw:  `{"kind":"basic"}`,
			want: FrontSchema{Version: 1, Kind: KindBasic, Score: 1, Prompt: ""},
		},
		{
			name: "options not a list",
			raw:  `{"kind":"multiple_choice","options":"A;B"}`,
			want: FrontSchema{Version: 1, Kind: KindMultipleChoice, Score: 1},
		},
		{
			name: "media fields filtered to strings",
			raw:  `{"kind":"basic","media":{"image":42,"audio":"a.mp3","extra":"x"}}`,
			want: FrontSchema{Version: 1, Kind: KindBasic, Score: 1, Media: &Media{Audio: "a.mp3"}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DecodeFront(c.raw); !reflect.DeepEqual(got, c.want) {
				t.Errorf("DecodeFront(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}

func TestDecodeFrontUnrecognizedKindFallsBack(t *testing.T) {
	for _, raw := range []string{
		`{"kind":"essay","prompt":"write"}`,
		`{"prompt":"no kind at all"}`,
		`[1,2,3]`,
		`"just a json string"`,
		`{"kind":"basic"} trailing garbage`,
		`{broken`,
	} {
		got := DecodeFront(raw)
		if got.Kind != KindBasic || got.Prompt != raw || got.Score != 1 {
			t.Errorf("DecodeFront(%q) = %+v, want legacy basic fallback", raw, got)
		}
	}
}

func TestDecodeFrontRoundTripStable(t *testing.T) {
	raw := `{"kind":"fill_in_blank","score":3,"prompt":"{{1}} and {{2}}","options":null}`
	once := DecodeFront(raw)
	buf, err := json.Marshal(once)
	if err != nil {
		t.Fatal(err)
	}
	twice := DecodeFront(string(buf))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("round trip unstable: %+v vs %+v", once, twice)
	}
}

func TestCountBlanks(t *testing.T) {
	cases := []struct {
		prompt string
		want   int
	}{
		{"", 0},
		{"no blanks here", 0},
		{"{{1}}", 1},
		{"{{1}} and {{2}}", 2},
		{"{{12}} wide index", 1},
		{"{{}} not a blank", 0},
		{"{{a}} not a blank either", 0},
		{"{{1}}{{2}}{{3}}", 3},
	}
	for _, c := range cases {
		if got := CountBlanks(c.prompt); got != c.want {
			t.Errorf("CountBlanks(%q) = %d, want %d", c.prompt, got, c.want)
		}
	}
}
