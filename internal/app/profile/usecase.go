package profile

import (
	"context"
	"errors"
	"strings"

	"voidascendant/internal/app/ports"
)

var ErrInvalidName = errors.New("invalid player name")

// UseCase wraps the persisted player flags. A nil Store reads every key as
// absent and drops writes.
type UseCase struct {
	Store     ports.KeyValueStore
	TxManager ports.TxManager
}

type Profile struct {
	PlayerName string `json:"player_name"`
	IntroShown bool   `json:"intro_shown"`
	DebugMode  bool   `json:"debug_mode"`
}

// BeginIntro reports whether the intro should play, marking it seen on the
// first call.
func (u UseCase) BeginIntro(ctx context.Context) (bool, error) {
	shown, err := u.flag(ctx, ports.KeyIntroShown)
	if err != nil {
		return false, err
	}
	if shown {
		return false, nil
	}
	if err := u.set(ctx, ports.KeyIntroShown, "1"); err != nil {
		return false, err
	}
	return true, nil
}

func (u UseCase) SavePlayerName(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	if err := u.set(ctx, ports.KeyPlayerName, name); err != nil {
		return "", err
	}
	return name, nil
}

func (u UseCase) PlayerName(ctx context.Context) (string, error) {
	return u.get(ctx, ports.KeyPlayerName)
}

func (u UseCase) DebugMode(ctx context.Context) (bool, error) {
	return u.flag(ctx, ports.KeyDebugMode)
}

func (u UseCase) SetDebugMode(ctx context.Context, on bool) error {
	if !on {
		return u.remove(ctx, ports.KeyDebugMode)
	}
	return u.set(ctx, ports.KeyDebugMode, "1")
}

func (u UseCase) Load(ctx context.Context) (Profile, error) {
	name, err := u.PlayerName(ctx)
	if err != nil {
		return Profile{}, err
	}
	intro, err := u.flag(ctx, ports.KeyIntroShown)
	if err != nil {
		return Profile{}, err
	}
	debug, err := u.DebugMode(ctx)
	if err != nil {
		return Profile{}, err
	}
	return Profile{PlayerName: name, IntroShown: intro, DebugMode: debug}, nil
}

// Forget clears the intro and name keys. The debug flag is a preference and
// survives.
func (u UseCase) Forget(ctx context.Context) error {
	forget := func(ctx context.Context) error {
		if err := u.remove(ctx, ports.KeyIntroShown); err != nil {
			return err
		}
		return u.remove(ctx, ports.KeyPlayerName)
	}
	if u.TxManager == nil {
		return forget(ctx)
	}
	return u.TxManager.RunInTx(ctx, forget)
}

func (u UseCase) flag(ctx context.Context, key string) (bool, error) {
	v, err := u.get(ctx, key)
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

func (u UseCase) get(ctx context.Context, key string) (string, error) {
	if u.Store == nil {
		return "", nil
	}
	v, err := u.Store.Get(ctx, key)
	if errors.Is(err, ports.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func (u UseCase) set(ctx context.Context, key, value string) error {
	if u.Store == nil {
		return nil
	}
	return u.Store.Set(ctx, key, value)
}

func (u UseCase) remove(ctx context.Context, key string) error {
	if u.Store == nil {
		return nil
	}
	return u.Store.Remove(ctx, key)
}
