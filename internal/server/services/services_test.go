package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/inkwatch/inkwatch/internal/server/repositories/repomanager"
	"github.com/inkwatch/inkwatch/internal/ss58"
)

// schema mirrors the goose migration in sqlite dialect; tests run against an
// in-memory database so the SQL paths are exercised for real.
var schema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE tokens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users (id),
		token TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE public_keys (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users (id),
		address BLOB NOT NULL,
		UNIQUE (user_id, address)
	)`,
	`CREATE TABLE nodes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		url TEXT NOT NULL,
		confirmed_block INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE codes (
		hash BLOB PRIMARY KEY,
		code BLOB NOT NULL
	)`,
	`CREATE TABLE contracts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		node_id INTEGER NOT NULL REFERENCES nodes (id),
		code_hash BLOB NOT NULL REFERENCES codes (hash),
		address BLOB NOT NULL,
		owner BLOB
	)`,
	`CREATE TABLE events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		node_id INTEGER NOT NULL REFERENCES nodes (id),
		account BLOB NOT NULL,
		event_type TEXT NOT NULL,
		body TEXT NOT NULL,
		block_timestamp TIMESTAMP NOT NULL
	)`,
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	for _, stmt := range schema {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func createUser(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow(`INSERT INTO users DEFAULT VALUES RETURNING id`).Scan(&id))
	return id
}

func linkKey(t *testing.T, db *sql.DB, userID int64, address ss58.Address) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO public_keys (user_id, address) VALUES ($1, $2)`,
		userID, address.Bytes())
	require.NoError(t, err)
}

func createNode(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow(
		`INSERT INTO nodes (name, url, confirmed_block) VALUES ('test', 'ws://localhost:9944', 0) RETURNING id`,
	).Scan(&id))
	return id
}

func insertEvent(t *testing.T, db *sql.DB, nodeID int64, account ss58.Address, body string, ts time.Time) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO events (node_id, account, event_type, body, block_timestamp) VALUES ($1, $2, $3, $4, $5)`,
		nodeID, account.Bytes(), "ContractEmitted", body, ts)
	require.NoError(t, err)
}

func testAddress(fill byte) ss58.Address {
	var addr ss58.Address
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

func TestKeyService_ListOrderedByID(t *testing.T) {
	db := setupDB(t)
	repos := repomanager.NewPostgresRepositoryManager()
	svc := NewKeyService(db, repos)

	user := createUser(t, db)
	a1 := testAddress(1)
	a2 := testAddress(2)
	linkKey(t, db, user, a1)
	linkKey(t, db, user, a2)

	keys, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	require.Equal(t, a1.Bytes(), keys[0].Address)
	require.Equal(t, a2.Bytes(), keys[1].Address)
	require.Less(t, keys[0].ID, keys[1].ID)
}

func TestKeyService_ListEmpty(t *testing.T) {
	db := setupDB(t)
	svc := NewKeyService(db, repomanager.NewPostgresRepositoryManager())

	user := createUser(t, db)

	keys, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, keys)
	require.Empty(t, keys)
}

func TestKeyService_DeleteUnlinkedAddressIsNoOp(t *testing.T) {
	db := setupDB(t)
	svc := NewKeyService(db, repomanager.NewPostgresRepositoryManager())

	user := createUser(t, db)
	linkKey(t, db, user, testAddress(1))

	require.NoError(t, svc.Delete(context.Background(), user, testAddress(9)))

	keys, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, keys, 1, "unrelated linkage must survive")
}

func TestKeyService_DeleteIsIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := NewKeyService(db, repomanager.NewPostgresRepositoryManager())

	user := createUser(t, db)
	addr := testAddress(1)
	linkKey(t, db, user, addr)

	require.NoError(t, svc.Delete(context.Background(), user, addr))
	require.NoError(t, svc.Delete(context.Background(), user, addr))

	keys, err := svc.List(context.Background(), user)
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestKeyService_DeleteScopedToOwner(t *testing.T) {
	db := setupDB(t)
	svc := NewKeyService(db, repomanager.NewPostgresRepositoryManager())

	owner := createUser(t, db)
	other := createUser(t, db)
	addr := testAddress(1)
	linkKey(t, db, owner, addr)

	// The other user deleting the owner's address must succeed without
	// touching the owner's linkage.
	require.NoError(t, svc.Delete(context.Background(), other, addr))

	keys, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, keys, 1)
}

func TestEventService_NewestFirst(t *testing.T) {
	db := setupDB(t)
	svc := NewEventService(db, repomanager.NewPostgresRepositoryManager())

	node := createNode(t, db)
	account := testAddress(1)

	// Inserted out of order on purpose.
	insertEvent(t, db, node, account, `"second"`, time.Unix(200, 0).UTC())
	insertEvent(t, db, node, account, `"third"`, time.Unix(300, 0).UTC())
	insertEvent(t, db, node, account, `"first"`, time.Unix(100, 0).UTC())

	events, err := svc.Events(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, `"third"`, events[0].Body)
	require.Equal(t, int64(300), events[0].Timestamp)
	require.Equal(t, `"second"`, events[1].Body)
	require.Equal(t, `"first"`, events[2].Body)
}

func TestEventService_CappedAtTwentyFive(t *testing.T) {
	db := setupDB(t)
	svc := NewEventService(db, repomanager.NewPostgresRepositoryManager())

	node := createNode(t, db)
	account := testAddress(1)

	for i := 0; i < 30; i++ {
		insertEvent(t, db, node, account, fmt.Sprintf(`"event-%d"`, i), time.Unix(int64(i), 0).UTC())
	}

	events, err := svc.Events(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, events, 25)
	require.Equal(t, int64(29), events[0].Timestamp)
	require.Equal(t, int64(5), events[24].Timestamp, "only the 25 most recent survive")
}

func TestEventService_TimestampTieBreaksByRowID(t *testing.T) {
	db := setupDB(t)
	svc := NewEventService(db, repomanager.NewPostgresRepositoryManager())

	node := createNode(t, db)
	account := testAddress(1)
	ts := time.Unix(100, 0).UTC()

	insertEvent(t, db, node, account, `"older-row"`, ts)
	insertEvent(t, db, node, account, `"newer-row"`, ts)

	events, err := svc.Events(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, `"newer-row"`, events[0].Body)
	require.Equal(t, `"older-row"`, events[1].Body)
}

func TestEventService_UnknownAccountIsEmpty(t *testing.T) {
	db := setupDB(t)
	svc := NewEventService(db, repomanager.NewPostgresRepositoryManager())

	events, err := svc.Events(context.Background(), testAddress(1))
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
}

func TestEventService_FiltersByAccount(t *testing.T) {
	db := setupDB(t)
	svc := NewEventService(db, repomanager.NewPostgresRepositoryManager())

	node := createNode(t, db)
	insertEvent(t, db, node, testAddress(1), `"mine"`, time.Unix(1, 0).UTC())
	insertEvent(t, db, node, testAddress(2), `"other"`, time.Unix(2, 0).UTC())

	events, err := svc.Events(context.Background(), testAddress(1))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, `"mine"`, events[0].Body)
}
