package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinAdd(t *testing.T) {
	v, err := builtinAdd(nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(0)))

	v, err = builtinAdd([]Value{Number(1), Number(2), Number(3)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(6)))

	_, err = builtinAdd([]Value{Number(1), String("a")})
	assertKind(t, err, ErrType)
}

func TestBuiltinSub(t *testing.T) {
	_, err := builtinSub(nil)
	assertKind(t, err, ErrWrongNumArgs)

	v, err := builtinSub([]Value{Number(5)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(-5)))

	v, err = builtinSub([]Value{Number(10), Number(3), Number(2)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(5)))
}

func TestBuiltinMul(t *testing.T) {
	v, err := builtinMul(nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(1)))

	v, err = builtinMul([]Value{Number(2), Number(3), Number(4)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(24)))
}

func TestBuiltinDiv(t *testing.T) {
	v, err := builtinDiv([]Value{Number(10), Number(4)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(2.5)))

	_, err = builtinDiv([]Value{Number(10), Number(0)})
	assertKind(t, err, ErrDivisionByZero)

	_, err = builtinDiv([]Value{Number(10)})
	assertKind(t, err, ErrWrongNumArgs)

	_, err = builtinDiv([]Value{Number(10), Number(2), Number(1)})
	assertKind(t, err, ErrWrongNumArgs)
}

func TestBuiltinEq(t *testing.T) {
	v, err := builtinEq([]Value{Number(1), Number(1)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Bool(true)))

	v, err = builtinEq([]Value{String("a"), String("b")})
	require.NoError(t, err)
	assert.True(t, v.Equal(Bool(false)))

	v, err = builtinNEq([]Value{Nil(), Bool(false)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Bool(true)))

	_, err = builtinEq([]Value{Number(1)})
	assertKind(t, err, ErrWrongNumArgs)
}

func TestBuiltinComparisons(t *testing.T) {
	tests := []struct {
		fun    Builtin
		a, b   float64
		expect bool
	}{
		{builtinGT, 3, 2, true},
		{builtinGT, 2, 3, false},
		{builtinLT, 2, 3, true},
		{builtinLT, 3, 2, false},
		{builtinGEq, 2, 2, true},
		{builtinGEq, 1, 2, false},
		{builtinLEq, 2, 2, true},
		{builtinLEq, 3, 2, false},
	}
	for i, test := range tests {
		v, err := test.fun([]Value{Number(test.a), Number(test.b)})
		require.NoError(t, err, "test %d", i)
		assert.True(t, v.Equal(Bool(test.expect)), "test %d", i)
	}

	_, err := builtinGT([]Value{Number(1), String("a")})
	assertKind(t, err, ErrType)
}

func TestBuiltinPrint(t *testing.T) {
	var buf bytes.Buffer
	printFn := builtinPrint(&buf)

	args := []Value{Number(1), String("two"), Bool(true), Nil()}
	v, err := printFn(args)
	require.NoError(t, err)
	assert.Equal(t, VNil, v.Type)
	assert.Equal(t, "1 two true nil\n", buf.String())

	// Arguments are untouched.
	assert.True(t, args[0].Equal(Number(1)))
	assert.True(t, args[1].Equal(String("two")))

	buf.Reset()
	_, err = printFn(nil)
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}
