package memory

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

func testSubmission(id string, createdAt time.Time) *types.RelaySubmission {
	return &types.RelaySubmission{
		RequestID:     id,
		Operation:     "vote",
		TxHash:        common.HexToHash("0x01"),
		Status:        types.SubmissionPending,
		Confirmations: 1,
		GasSettings: types.GasSettings{
			MaxPriorityFeePerGas: big.NewInt(30),
			MaxFeePerGas:         big.NewInt(60),
			GasLimit:             300_000,
			Version:              1,
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestSaveAndGet(t *testing.T) {
	store := NewMemorySubmissionStore()

	t.Run("Round trip", func(t *testing.T) {
		sub := testSubmission("req-1", time.Now())
		require.NoError(t, store.SaveSubmission(sub))

		got, err := store.GetSubmission("req-1")
		require.NoError(t, err)
		require.Equal(t, sub.RequestID, got.RequestID)
		require.Equal(t, sub.TxHash, got.TxHash)
	})

	t.Run("Missing ID returns nil without error", func(t *testing.T) {
		got, err := store.GetSubmission("nope")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("Save overwrites", func(t *testing.T) {
		sub := testSubmission("req-1", time.Now())
		sub.Status = types.SubmissionConfirmed
		require.NoError(t, store.SaveSubmission(sub))

		got, err := store.GetSubmission("req-1")
		require.NoError(t, err)
		require.Equal(t, types.SubmissionConfirmed, got.Status)
	})

	t.Run("Nil and unkeyed submissions rejected", func(t *testing.T) {
		require.Error(t, store.SaveSubmission(nil))
		require.Error(t, store.SaveSubmission(&types.RelaySubmission{}))
	})
}

func TestDeepCopy(t *testing.T) {
	store := NewMemorySubmissionStore()

	sub := testSubmission("req-copy", time.Now())
	require.NoError(t, store.SaveSubmission(sub))

	// Mutating what we saved or what we read must not touch the stored record.
	sub.GasSettings.MaxFeePerGas.SetInt64(1)

	got, err := store.GetSubmission("req-copy")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(60), got.GasSettings.MaxFeePerGas)

	got.Status = types.SubmissionReverted
	again, err := store.GetSubmission("req-copy")
	require.NoError(t, err)
	require.Equal(t, types.SubmissionPending, again.Status)
}

func TestListSubmissions(t *testing.T) {
	store := NewMemorySubmissionStore()

	list, err := store.ListSubmissions()
	require.NoError(t, err)
	require.Empty(t, list)

	base := time.Now()
	require.NoError(t, store.SaveSubmission(testSubmission("req-b", base.Add(time.Second))))
	require.NoError(t, store.SaveSubmission(testSubmission("req-a", base)))
	require.NoError(t, store.SaveSubmission(testSubmission("req-c", base.Add(2*time.Second))))

	list, err = store.ListSubmissions()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "req-a", list[0].RequestID)
	require.Equal(t, "req-b", list[1].RequestID)
	require.Equal(t, "req-c", list[2].RequestID)
}

func TestDelete(t *testing.T) {
	store := NewMemorySubmissionStore()

	require.NoError(t, store.SaveSubmission(testSubmission("req-del", time.Now())))
	require.NoError(t, store.DeleteSubmission("req-del"))

	got, err := store.GetSubmission("req-del")
	require.NoError(t, err)
	require.Nil(t, got)

	// Idempotent
	require.NoError(t, store.DeleteSubmission("req-del"))
}

func TestClose(t *testing.T) {
	store := NewMemorySubmissionStore()
	require.NoError(t, store.HealthCheck())
	require.NoError(t, store.Close())

	require.Error(t, store.HealthCheck())
	require.Error(t, store.SaveSubmission(testSubmission("req", time.Now())))
	_, err := store.GetSubmission("req")
	require.Error(t, err)
	_, err = store.ListSubmissions()
	require.Error(t, err)
	require.Error(t, store.DeleteSubmission("req"))
}
