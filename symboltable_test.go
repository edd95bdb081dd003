package main

import (
	"errors"
	"io"
	"testing"

	"github.com/nalgeon/be"
)

func TestNewSymbolTable(t *testing.T) {
	st := NewSymbolTable()
	be.True(t, st != nil)
	be.Equal(t, st.Len(), 0)
	be.Equal(t, len(st.Names()), 0)
}

func TestSetAndGet(t *testing.T) {
	st := NewSymbolTable()

	st.Set("x", 5)
	v, err := st.Get("x")
	be.Err(t, err, nil)
	be.Equal(t, v, int64(5))
	be.Equal(t, st.Len(), 1)
}

func TestSetOverwrites(t *testing.T) {
	st := NewSymbolTable()

	st.Set("x", 5)
	st.Set("x", -12)
	v, err := st.Get("x")
	be.Err(t, err, nil)
	be.Equal(t, v, int64(-12))
	be.Equal(t, st.Len(), 1)
}

func TestGetUndefined(t *testing.T) {
	st := NewSymbolTable()

	_, err := st.Get("undefined")
	be.Err(t, err, ErrRuntime)
	be.Equal(t, err.Error(), "Unrecognized variable undefined")

	var rt *RuntimeError
	be.True(t, errors.As(err, &rt))
	be.Equal(t, rt.Kind, UndefinedVariable)
	be.Equal(t, rt.Name, "undefined")
}

func TestNamesSorted(t *testing.T) {
	st := NewSymbolTable()
	st.Set("zeta", 1)
	st.Set("alpha", 2)
	st.Set("_mid", 3)

	be.Equal(t, st.Names(), []string{"_mid", "alpha", "zeta"})
}

func TestProgramsDoNotShareTables(t *testing.T) {
	p1, err := Parse([]byte("= x 1\n"), nil)
	be.Err(t, err, nil)
	p2, err := Parse([]byte("@x\n"), nil)
	be.Err(t, err, nil)

	be.Err(t, p1.Evaluate(io.Discard), nil)
	be.Err(t, p2.Evaluate(io.Discard), ErrRuntime)
	be.True(t, p1.Symbols != p2.Symbols)
}
