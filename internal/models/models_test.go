package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"parfums", CategoryParfums, true},
		{"  SkinCare ", CategorySkincare, true},
		{"MAKEUP", CategoryMakeup, true},
		{"others", CategoryOthers, true},
		{"shoes", "shoes", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	first := Categories()
	first[0].Name = "changed"

	assert.Equal(t, "Parfums", Categories()[0].Name)
	assert.Len(t, Categories(), 4)
}

func TestOrderStatusPrevious(t *testing.T) {
	prev, ok := OrderStatusShipped.Previous()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusPending, prev)

	prev, ok = OrderStatusDelivered.Previous()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusShipped, prev)

	_, ok = OrderStatusPending.Previous()
	assert.False(t, ok)

	_, ok = OrderStatus("cancelled").Previous()
	assert.False(t, ok)
	assert.False(t, OrderStatus("cancelled").Valid())
}

func TestProductImage(t *testing.T) {
	assert.Equal(t, DefaultProductImage, Product{}.Image())
	assert.Equal(t, "https://cdn.example/p.jpg", Product{ImageURL: "https://cdn.example/p.jpg"}.Image())
}

func TestAdminSessionActive(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	assert.True(t, AdminSession{ExpiresAt: now.Add(time.Hour)}.Active(now))
	assert.False(t, AdminSession{ExpiresAt: now.Add(-time.Second)}.Active(now))
	assert.False(t, AdminSession{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}.Active(now))
}

func TestBeforeCreateKeepsExistingID(t *testing.T) {
	id := uuid.New()
	b := BaseModel{ID: id}
	assert.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, id, b.ID)

	var fresh BaseModel
	assert.NoError(t, fresh.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, fresh.ID)
}
