package runtime

import (
	"context"
	"fmt"
	"list-sync/domain"
	"list-sync/errors"
	"list-sync/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAudienceResolver_Resolve(t *testing.T) {
	listID := domain.NewListID()

	cases := []struct {
		name     string
		listID   domain.ListID
		snapshot []domain.UserID
		setup    func(store *mocks.MockMembershipStore)
		want     []domain.UserID
	}{
		{
			name:   "current members",
			listID: listID,
			setup: func(store *mocks.MockMembershipStore) {
				store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), listID).Return([]domain.UserID{"alice", "bob", "alice"}, nil)
			},
			want: []domain.UserID{"alice", "bob"},
		},
		{
			name:     "snapshot wins without query",
			listID:   listID,
			snapshot: []domain.UserID{"dave"},
			want:     []domain.UserID{"dave"},
		},
		{
			name:     "empty snapshot is still a snapshot",
			listID:   listID,
			snapshot: []domain.UserID{},
		},
		{
			name:   "list not found",
			listID: listID,
			setup: func(store *mocks.MockMembershipStore) {
				store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), listID).Return(nil, errors.ErrListNotFound)
			},
		},
		{
			name:   "storage failure",
			listID: listID,
			setup: func(store *mocks.MockMembershipStore) {
				store.EXPECT().LoadCurrentMemberIDs(gomock.Any(), listID).Return(nil, fmt.Errorf("disk on fire"))
			},
		},
		{
			name:   "malformed id",
			listID: "42",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			store := mocks.NewMockMembershipStore(ctrl)
			if tc.setup != nil {
				tc.setup(store)
			}
			resolver := NewAudienceResolver(testLogger(), store)

			// When
			audience := resolver.Resolve(context.Background(), tc.listID, tc.snapshot)

			// Then
			req.Equal(len(tc.want), audience.Len())
			for _, id := range tc.want {
				req.True(audience.Contains(id))
			}
		})
	}
}
