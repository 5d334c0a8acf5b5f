package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("query: %w", gorm.ErrRecordNotFound)), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
	assert.NoError(t, translate(nil))
}
