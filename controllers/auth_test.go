package controllers

import (
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)))

	// A racing insert surfaces as the driver's 1062 instead of the gorm
	// sentinel.
	raced := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'users.email'"}
	assert.True(t, isDuplicateKey(raced))
	assert.True(t, isDuplicateKey(fmt.Errorf("create user: %w", raced)))

	assert.False(t, isDuplicateKey(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicateKey(&mysql.MySQLError{Number: 1064}))
}
