package recognition

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/soocke/camocr/domain/snapshot"
)

type fakeEngine struct {
	text  string
	err   error
	panic bool
	calls int
	last  Input
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Recognize(_ context.Context, in Input) (string, error) {
	e.calls++
	e.last = in
	if e.panic {
		panic("model exploded")
	}
	return e.text, e.err
}

const failure = "テキスト認識に失敗しました。もう一度お試しください。"

func testImage() snapshot.CapturedImage {
	return snapshot.CapturedImage{ID: "img-1", PNG: []byte{0x89, 'P', 'N', 'G'}, Width: 1, Height: 1}
}

func newAdapter(e Engine) *Adapter {
	return NewAdapter(e, Options{Language: "jpn", PageSegMode: 6, FailureText: failure}, nil)
}

func TestAdapter_StripsWhitespace(t *testing.T) {
	cases := []struct{ in, want string }{
		{"東 京 都", "東京都"},
		{"東\t京\n都\n", "東京都"},
		{"　全角　スペース　", "全角スペース"},
		{" a b\r\nc ", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		in, want := tc.in, tc.want
		e := &fakeEngine{text: in}
		res := newAdapter(e).Recognize(context.Background(), testImage())
		if res.Failed || res.Text != want {
			t.Fatalf("input %q: expected %q, got %q (failed=%v)", in, want, res.Text, res.Failed)
		}
		if strings.IndexFunc(res.Text, unicode.IsSpace) >= 0 {
			t.Fatalf("whitespace left in %q", res.Text)
		}
	}
}

func TestAdapter_PassesLanguageAndImage(t *testing.T) {
	e := &fakeEngine{text: "x"}
	img := testImage()
	newAdapter(e).Recognize(context.Background(), img)
	if e.calls != 1 || e.last.Language != "jpn" || e.last.PageSegMode != 6 || e.last.ID != img.ID || len(e.last.Image) != len(img.PNG) {
		t.Fatalf("unexpected engine input: calls=%d %+v", e.calls, e.last)
	}
}

func TestAdapter_FailureYieldsPlaceholder(t *testing.T) {
	e := &fakeEngine{err: errors.New("traineddata not found")}
	res := newAdapter(e).Recognize(context.Background(), testImage())
	if !res.Failed || res.Text != failure {
		t.Fatalf("expected placeholder, got %+v", res)
	}
	if e.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", e.calls)
	}
}

func TestAdapter_PanicYieldsPlaceholder(t *testing.T) {
	res := newAdapter(&fakeEngine{panic: true}).Recognize(context.Background(), testImage())
	if !res.Failed || res.Text != failure {
		t.Fatalf("expected placeholder after panic, got %+v", res)
	}
}

func TestAdapter_NoEngineOrEmptyImage(t *testing.T) {
	if res := newAdapter(nil).Recognize(context.Background(), testImage()); !res.Failed {
		t.Fatalf("nil engine should fail")
	}
	e := &fakeEngine{text: "x"}
	if res := newAdapter(e).Recognize(context.Background(), snapshot.CapturedImage{}); !res.Failed || e.calls != 0 {
		t.Fatalf("empty image should fail without engine call: %+v calls=%d", res, e.calls)
	}
}

func TestAdapter_CancelledContextSkipsEngine(t *testing.T) {
	e := &fakeEngine{text: "x"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if res := newAdapter(e).Recognize(ctx, testImage()); !res.Failed || e.calls != 0 {
		t.Fatalf("cancelled context: res=%+v calls=%d", res, e.calls)
	}
}

func TestAdapter_FoldWidth(t *testing.T) {
	e := &fakeEngine{text: "ＡＢＣ １２３ ｶﾀｶﾅ"}
	a := NewAdapter(e, Options{Language: "jpn", FailureText: failure, FoldWidth: true}, nil)
	if res := a.Recognize(context.Background(), testImage()); res.Text != "ABC123カタカナ" {
		t.Fatalf("unexpected folded text %q", res.Text)
	}
}
