/*
File    : golox/object/value_test.go
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual_SameVariant(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.True(t, Equal(Bool(true), Bool(true)))
}

func TestEqual_CrossVariantIsAlwaysFalseExceptNilNil(t *testing.T) {
	assert.False(t, Equal(Nil{}, Number(0)))
	assert.False(t, Equal(Number(0), Bool(false)))
	assert.False(t, Equal(String("a"), Bool(true)))
}

func TestNumber_StringFormatting(t *testing.T) {
	assert.Equal(t, "7", Number(7).String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "-3", Number(-3).String())
}

func TestBool_String(t *testing.T) {
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
}

func TestNil_String(t *testing.T) {
	assert.Equal(t, "nil", Nil{}.String())
}
