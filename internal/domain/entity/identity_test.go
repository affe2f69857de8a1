package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_TokenList(t *testing.T) {
	identity := &Identity{}

	identity.AddToken("t1", TokenAccessAuth)
	identity.AddToken("t2", TokenAccessAuth)
	identity.AddToken("t1", TokenAccessAuth)

	assert.Len(t, identity.Tokens, 2)
	assert.True(t, identity.HasToken("t1"))
	assert.Equal(t, "t2", identity.Tokens[1].Token)

	assert.True(t, identity.RemoveToken("t1"))
	assert.False(t, identity.HasToken("t1"))
	assert.True(t, identity.HasToken("t2"))

	assert.False(t, identity.RemoveToken("t1"), "removing an absent token is a no-op")
	assert.Len(t, identity.Tokens, 1)
}

func TestTodo_MarkCompleted(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_123)
	todo := &Todo{}

	todo.MarkCompleted(true, now)
	assert.True(t, todo.Completed)
	if assert.NotNil(t, todo.CompletedAt) {
		assert.Equal(t, int64(1_700_000_000_123), *todo.CompletedAt)
	}

	todo.MarkCompleted(false, now)
	assert.False(t, todo.Completed)
	assert.Nil(t, todo.CompletedAt)
}
