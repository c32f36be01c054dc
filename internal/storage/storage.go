// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit int = 20

// Storage keeps per-scope records in a JSON datastore. A scope is a guild
// ID for Discord or "console" for the console host.
type Storage struct {
	ds *datastore.DataStore
	// mu serializes read-modify-write cycles on a record.
	mu sync.Mutex
}

type CommandRecord struct {
	ChannelID string    `json:"channel_id,omitempty"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Label     string    `json:"label"`
	Args      string    `json:"args,omitempty"`
	Error     string    `json:"error,omitempty"`
	Datetime  time.Time `json:"datetime"`
}

type Record struct {
	CommandsHistoryList []CommandRecord `json:"cmd_history"`
	CommandCounts       map[string]int  `json:"cmd_counts"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateRecord returns the record for scope, creating an empty one.
func (s *Storage) getOrCreateRecord(scope string) (*Record, error) {
	data, exists := s.ds.Get(scope)
	if !exists {
		newRecord := &Record{
			CommandsHistoryList: []CommandRecord{},
			CommandCounts:       map[string]int{},
		}
		s.ds.Add(scope, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if record.CommandCounts == nil {
		record.CommandCounts = map[string]int{}
	}
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	return &record, nil
}

// AppendCommand records one command run for scope, keeping the last
// commandHistoryLimit entries.
func (s *Storage) AppendCommand(scope string, rec CommandRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateRecord(scope)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	record.CommandCounts[rec.Command]++
	s.ds.Add(scope, record)
	return nil
}

// FetchCommandHistory returns the recorded commands for scope, oldest first.
func (s *Storage) FetchCommandHistory(scope string) ([]CommandRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateRecord(scope)
	if err != nil {
		return nil, err
	}
	return append([]CommandRecord(nil), record.CommandsHistoryList...), nil
}

// CommandCount returns how many times command ran in scope.
func (s *Storage) CommandCount(scope, command string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateRecord(scope)
	if err != nil {
		return 0, err
	}
	return record.CommandCounts[command], nil
}
