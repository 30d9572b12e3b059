package profile

import (
	"context"
	"errors"
	"testing"

	"voidascendant/internal/app/ports"
)

func TestBeginIntro_OnlyFirstTime(t *testing.T) {
	store := &stubStore{values: map[string]string{}}
	uc := UseCase{Store: store}

	show, err := uc.BeginIntro(context.Background())
	if err != nil {
		t.Fatalf("BeginIntro error: %v", err)
	}
	if !show {
		t.Fatalf("expected intro on first visit")
	}
	if store.values[ports.KeyIntroShown] != "1" {
		t.Fatalf("expected intro flag persisted, got %q", store.values[ports.KeyIntroShown])
	}
	show, err = uc.BeginIntro(context.Background())
	if err != nil {
		t.Fatalf("BeginIntro error: %v", err)
	}
	if show {
		t.Fatalf("expected intro skipped on second visit")
	}
}

func TestSavePlayerName_TrimsAndRejectsBlank(t *testing.T) {
	store := &stubStore{values: map[string]string{}}
	uc := UseCase{Store: store}

	if _, err := uc.SavePlayerName(context.Background(), "   "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	name, err := uc.SavePlayerName(context.Background(), "  Vega ")
	if err != nil {
		t.Fatalf("SavePlayerName error: %v", err)
	}
	if name != "Vega" || store.values[ports.KeyPlayerName] != "Vega" {
		t.Fatalf("expected trimmed name stored, got %q / %q", name, store.values[ports.KeyPlayerName])
	}
}

func TestForget_KeepsDebugPreference(t *testing.T) {
	store := &stubStore{values: map[string]string{
		ports.KeyIntroShown: "1",
		ports.KeyPlayerName: "Vega",
		ports.KeyDebugMode:  "1",
	}}
	uc := UseCase{Store: store}
	if err := uc.Forget(context.Background()); err != nil {
		t.Fatalf("Forget error: %v", err)
	}
	p, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if p.IntroShown || p.PlayerName != "" || !p.DebugMode {
		t.Fatalf("unexpected profile after forget: %+v", p)
	}
}

func TestForget_RunsInsideTransaction(t *testing.T) {
	store := &stubStore{values: map[string]string{ports.KeyPlayerName: "Vega"}}
	tx := &stubTx{}
	uc := UseCase{Store: store, TxManager: tx}
	if err := uc.Forget(context.Background()); err != nil {
		t.Fatalf("Forget error: %v", err)
	}
	if tx.calls != 1 {
		t.Fatalf("expected one transaction, got %d", tx.calls)
	}
	if _, ok := store.values[ports.KeyPlayerName]; ok {
		t.Fatalf("expected player name removed")
	}
}

func TestSetDebugMode(t *testing.T) {
	store := &stubStore{values: map[string]string{}}
	uc := UseCase{Store: store}
	if err := uc.SetDebugMode(context.Background(), true); err != nil {
		t.Fatalf("SetDebugMode error: %v", err)
	}
	if on, _ := uc.DebugMode(context.Background()); !on {
		t.Fatalf("expected debug on")
	}
	if err := uc.SetDebugMode(context.Background(), false); err != nil {
		t.Fatalf("SetDebugMode error: %v", err)
	}
	if on, _ := uc.DebugMode(context.Background()); on {
		t.Fatalf("expected debug off")
	}
}

func TestNilStoreIsTolerated(t *testing.T) {
	uc := UseCase{}
	show, err := uc.BeginIntro(context.Background())
	if err != nil || !show {
		t.Fatalf("expected intro with nil store, got show=%v err=%v", show, err)
	}
	if _, err := uc.SavePlayerName(context.Background(), "Vega"); err != nil {
		t.Fatalf("expected dropped write, got %v", err)
	}
	if name, err := uc.PlayerName(context.Background()); err != nil || name != "" {
		t.Fatalf("expected empty name, got %q err=%v", name, err)
	}
}

func TestPropagatesStoreError(t *testing.T) {
	wantErr := errors.New("store down")
	uc := UseCase{Store: &stubStore{err: wantErr}}
	if _, err := uc.BeginIntro(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error %v, got %v", wantErr, err)
	}
}

type stubStore struct {
	values map[string]string
	err    error
}

func (s *stubStore) Get(_ context.Context, key string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	v, ok := s.values[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return v, nil
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	return nil
}

func (s *stubStore) Remove(_ context.Context, key string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.values, key)
	return nil
}

type stubTx struct {
	calls int
}

func (s *stubTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

var _ ports.KeyValueStore = (*stubStore)(nil)
var _ ports.TxManager = (*stubTx)(nil)
