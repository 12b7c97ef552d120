package emu

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type modulestub struct {
	inst      *enginestub
	instances int
}

func (m *modulestub) NewInstance() Instance {
	m.instances++
	return m.inst
}

type sourcestub struct {
	mod *modulestub
	err error
}

func (s *sourcestub) Init(ctx context.Context) (Module, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.mod, nil
}

func TestLoaderSuccess(t *testing.T) {
	eng := &enginestub{}
	src := &sourcestub{mod: &modulestub{inst: eng}}
	l := NewLoader(src, "pong.ch8")
	l.fetch = func(ctx context.Context, location string) ([]byte, error) {
		return make([]byte, 132), nil
	}

	inst, err := l.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if inst != Instance(eng) {
		t.Fatal("loader returned a different instance")
	}
	if len(eng.calls) != 1 || eng.calls[0] != "load 132" {
		t.Errorf("engine calls = %v, want [load 132]", eng.calls)
	}
}

func TestLoaderFetchFailure(t *testing.T) {
	mod := &modulestub{inst: &enginestub{}}
	l := NewLoader(&sourcestub{mod: mod}, "pong.ch8")
	l.fetch = func(ctx context.Context, location string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}

	inst, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "fetch rom") {
		t.Errorf("error %q does not mention the fetch", err)
	}
	if inst != nil {
		t.Error("instance returned despite fetch failure")
	}
	if mod.instances != 0 {
		t.Errorf("%d instances constructed despite fetch failure, want 0", mod.instances)
	}
}

func TestLoaderInitFailure(t *testing.T) {
	src := &sourcestub{err: errors.New("malformed module")}
	l := NewLoader(src, "pong.ch8")
	l.fetch = func(ctx context.Context, location string) ([]byte, error) {
		return []byte{0x00, 0xE0}, nil
	}

	inst, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if inst != nil {
		t.Error("instance returned despite init failure")
	}
}
