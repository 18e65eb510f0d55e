package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp())

	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.MigrateUp())
	require.NoError(t, db.MigrateUp())
}

func TestSessionRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("R U R' U'", "ggggggggg"+"rrrrrrrrr"+"yyyyyyyyy"+"bbbbbbbbb"+"ooooooooo"+"wwwwwwwww", "first attempt")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.SessionID)
	require.NotNil(t, got.ScrambleText)
	assert.Equal(t, "R U R' U'", *got.ScrambleText)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "first attempt", *got.Notes)
	assert.Nil(t, got.EndedAt)
	assert.Nil(t, got.Complete)
}

func TestSessionGetMissing(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	got, err := sessions.Get("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionEnd(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("F", "", "")
	require.NoError(t, err)

	require.NoError(t, sessions.End(id, "final-state", true))

	got, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.EndedAt)
	require.NotNil(t, got.EndState)
	assert.Equal(t, "final-state", *got.EndState)
	require.NotNil(t, got.Complete)
	assert.True(t, *got.Complete)
}

func TestSessionEndMissing(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	err := sessions.End("no-such-id", "state", false)
	assert.Error(t, err)
}

func TestSessionList(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := sessions.Create("", "", "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	listed, err := sessions.List(10)
	require.NoError(t, err)
	assert.Len(t, listed, 3)

	limited, err := sessions.List(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStepsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	steps := NewStepRepository(db)

	id, err := sessions.Create("", "", "")
	require.NoError(t, err)

	state := "some-state"
	_, err = steps.Create(id, 0, "green", "placed", "white-green edge placed", "", nil)
	require.NoError(t, err)
	_, err = steps.Create(id, 1, "red", "progress", "lifting into the top layer", "R U R'", &state)
	require.NoError(t, err)

	got, err := steps.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 0, got[0].Seq)
	assert.Equal(t, "green", got[0].Target)
	assert.Equal(t, "placed", got[0].Kind)
	assert.Nil(t, got[0].StateText)

	assert.Equal(t, 1, got[1].Seq)
	assert.Equal(t, "R U R'", got[1].MovesText)
	require.NotNil(t, got[1].StateText)
	assert.Equal(t, state, *got[1].StateText)
}

func TestStepsCreateBatch(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	steps := NewStepRepository(db)

	id, err := sessions.Create("", "", "")
	require.NoError(t, err)

	batch := []StepRecord{
		{Seq: 0, Target: "green", Kind: "placed", Description: "already seated", MovesText: ""},
		{Seq: 1, Target: "red", Kind: "progress", Description: "aligning", MovesText: "U"},
		{Seq: 2, Target: "red", Kind: "placed", Description: "white-red edge placed", MovesText: "R R"},
	}
	require.NoError(t, steps.CreateBatch(id, batch))

	n, err := steps.CountBySession(id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := steps.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "R R", got[2].MovesText)
}

func TestStepsCascadeDelete(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	steps := NewStepRepository(db)

	id, err := sessions.Create("", "", "")
	require.NoError(t, err)

	_, err = steps.Create(id, 0, "green", "placed", "seated", "", nil)
	require.NoError(t, err)

	_, err = db.Exec("DELETE FROM sessions WHERE session_id = ?", id)
	require.NoError(t, err)

	n, err := steps.CountBySession(id)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
