package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	migrations, err := Migrations().FindMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, "0001_create_users_and_meetings.sql", migrations[0].Id)
	assert.Equal(t, "0002_create_participants_and_activities.sql", migrations[1].Id)

	for _, m := range migrations {
		assert.NotEmpty(t, m.Up, m.Id)
		assert.NotEmpty(t, m.Down, m.Id)
	}

	schema := strings.Join(migrations[1].Up, "\n")
	assert.Contains(t, schema, "idx_participants_meeting_user")
	assert.Contains(t, schema, "ON DELETE CASCADE")
}
