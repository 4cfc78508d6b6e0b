package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	n int
}

func TestApply(t *testing.T) {
	tgt := &target{}

	err := Apply(tgt,
		NoError(func(tr *target) { tr.n = 1 }),
		New(func(tr *target) error { tr.n++; return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tgt.n)
}

func TestApplyStopsOnError(t *testing.T) {
	tgt := &target{}
	boom := errors.New("boom")

	err := Apply(tgt,
		NoError(func(tr *target) { tr.n = 1 }),
		New(func(tr *target) error { return boom }),
		NoError(func(tr *target) { tr.n = 99 }),
	)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, tgt.n)
}
