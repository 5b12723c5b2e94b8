package displaystore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/svatek/internal/domain/dashboard"
)

// ValkeyStore shares the board state between replicas through Valkey.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "svatek"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Load(ctx context.Context) (dashboard.State, bool, error) {
	cmd := s.client.B().Get().Key(s.stateKey()).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return dashboard.State{}, false, nil
		}
		return dashboard.State{}, false, err
	}
	var state dashboard.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return dashboard.State{}, false, fmt.Errorf("decode board state: %w", err)
	}
	return state, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, state dashboard.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	cmd := s.client.B().Set().Key(s.stateKey()).Value(string(payload)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) stateKey() string {
	return fmt.Sprintf("%s:board:state", s.prefix)
}

var _ dashboard.StateStore = (*ValkeyStore)(nil)
