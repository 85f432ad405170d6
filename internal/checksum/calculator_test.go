package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_KnownVector(t *testing.T) {
	// sha256("")
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", New().Calculate(nil))
}

func TestCalculate_Deterministic(t *testing.T) {
	c := New()
	a := c.Calculate([]byte("INSERT INTO t VALUES (1)"))
	b := c.Calculate([]byte("INSERT INTO t VALUES (1)"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, c.Calculate([]byte("INSERT INTO t VALUES (2)")))
}

func TestShort(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc", Short("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))
	assert.Equal(t, "abc", Short("abc"))
}

var _ Calculator = SHA256{}
