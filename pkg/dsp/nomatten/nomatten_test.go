package nomatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNomLessThanOrEqualOneIsUnity(t *testing.T) {
	a := New()
	a.Update(1.0)
	assert.Equal(t, 0.0, a.Db())
	assert.Equal(t, 1.0, a.LinearAtten())

	a.Update(0.0)
	assert.Equal(t, 0.0, a.Db())
	assert.Equal(t, 1.0, a.LinearAtten())
}

func TestDisabledIsUnityRegardlessOfNom(t *testing.T) {
	a := New()
	a.Update(8.0)
	assert.Less(t, a.Db(), 0.0)

	a.SetEnabled(false)
	assert.Equal(t, 0.0, a.Db())
	assert.Equal(t, 1.0, a.LinearAtten())

	// Even feeding a large nom while disabled stays at unity.
	a.Update(16.0)
	assert.Equal(t, 0.0, a.Db())
	assert.Equal(t, 1.0, a.LinearAtten())
}

func TestDoublingNomAddsThreeDb(t *testing.T) {
	a := New()
	a.Update(2.0)
	db2 := a.Db()
	a.Update(4.0)
	db4 := a.Db()
	assert.InDelta(t, -3.01, db4-db2, 0.05)
}

// TestNeverBoostsAboveUnity verifies attenuation never exceeds 0dB /
// 1.0 linear for any nom, enabled or not.
func TestNeverBoostsAboveUnity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nom := rapid.Float64Range(0, 64).Draw(t, "nom")
		enabled := rapid.Bool().Draw(t, "enabled")

		a := New()
		a.SetEnabled(enabled)
		a.Update(nom)

		if a.Db() > 0 {
			t.Fatalf("attenuation boosted above unity: %v dB", a.Db())
		}
		if a.LinearAtten() > 1.0 {
			t.Fatalf("linear attenuation above unity: %v", a.LinearAtten())
		}
	})
}
