package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedGroup inserts an open group with the next free group number.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	g := domain.Group{ID: uuid.New()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO groups (id, group_number)
		 SELECT $1, COALESCE(MAX(group_number), 0) + 1 FROM groups
		 RETURNING group_number, is_completed, created_at, updated_at`,
		g.ID,
	).Scan(&g.GroupNumber, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	return g
}

// SeedEntry appends an entry at the given position of a group. The text is
// built so that each position extends the previous one.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, groupID uuid.UUID, position int) domain.Entry {
	t.Helper()

	words := make([]string, position)
	for i := range words {
		words[i] = "word"
	}

	e := domain.Entry{
		ID:             uuid.New(),
		GroupID:        groupID,
		Position:       position,
		TextContent:    strings.Join(words, " "),
		AddedText:      "word",
		UserIdentifier: "seed-" + uniqueSuffix(),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entries (id, group_id, position_in_group, text_content, added_text, user_identifier, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.GroupID, e.Position, e.TextContent, e.AddedText, e.UserIdentifier, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return e
}

// SeedCompletedGroup inserts a group with all positions filled and marked completed.
func SeedCompletedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	g := SeedGroup(t, pool)
	for p := 1; p <= domain.GroupSize; p++ {
		g.Entries = append(g.Entries, SeedEntry(t, pool, g.ID, p))
	}

	if _, err := pool.Exec(context.Background(),
		`UPDATE groups SET is_completed = true WHERE id = $1`, g.ID,
	); err != nil {
		t.Fatalf("testhelper: SeedCompletedGroup: %v", err)
	}
	g.IsCompleted = true

	return g
}

// SeedAdmin inserts an admin account with the given stored password value.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, password string) domain.Admin {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Admin{
		ID:        uuid.New(),
		Username:  "admin-" + uniqueSuffix(),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO admins (id, username, password, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Username, a.Password, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin: %v", err)
	}

	return a
}
