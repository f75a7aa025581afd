package rpc

import (
	"context"
	"math/big"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	internalcommon "github.com/goran-ethernal/ChainRelay/internal/common"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	"github.com/goran-ethernal/ChainRelay/pkg/config"
	pkgrpc "github.com/goran-ethernal/ChainRelay/pkg/rpc"
	"github.com/stretchr/testify/require"
)

// fakeEthService serves the eth namespace methods the client uses.
type fakeEthService struct {
	mu    sync.Mutex
	head  uint64
	logs  []types.Log
	polls int
}

func (s *fakeEthService) ChainId() *hexutil.Big { //nolint:revive,stylecheck
	return (*hexutil.Big)(big.NewInt(31337))
}

func (s *fakeEthService) BlockNumber() hexutil.Uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return hexutil.Uint64(s.head)
}

func (s *fakeEthService) GetLogs(crit map[string]any) ([]types.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls++

	from, err := hexutil.DecodeUint64(crit["fromBlock"].(string))
	if err != nil {
		return nil, err
	}
	to, err := hexutil.DecodeUint64(crit["toBlock"].(string))
	if err != nil {
		return nil, err
	}

	result := []types.Log{}
	for _, l := range s.logs {
		if l.BlockNumber >= from && l.BlockNumber <= to {
			result = append(result, l)
		}
	}

	return result, nil
}

func (s *fakeEthService) mine(l types.Log) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.head++
	l.BlockNumber = s.head
	s.logs = append(s.logs, l)
}

func (s *fakeEthService) pollCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.polls
}

// fakeSubscribingService adds eth_subscribe("logs") on top of fakeEthService.
type fakeSubscribingService struct {
	*fakeEthService

	pending  chan types.Log
	released chan struct{}
}

func (s *fakeSubscribingService) Logs(ctx context.Context, _ map[string]any) (*rpc.Subscription, error) {
	notifier, supported := rpc.NotifierFromContext(ctx)
	if !supported {
		return nil, rpc.ErrNotificationsUnsupported
	}

	sub := notifier.CreateSubscription()
	go func() {
		for {
			select {
			case l := <-s.pending:
				_ = notifier.Notify(sub.ID, l)
			case <-sub.Err():
				close(s.released)
				return
			}
		}
	}()

	return sub, nil
}

func newHTTPTestClient(t *testing.T, svc *fakeEthService) *Client {
	t.Helper()

	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", svc))

	httpServer := httptest.NewServer(server)
	t.Cleanup(httpServer.Close)
	t.Cleanup(server.Stop)

	client, err := NewClient(context.Background(), config.ChainConfig{
		RPCURL:       httpServer.URL,
		PollInterval: internalcommon.NewDuration(10 * time.Millisecond),
	}, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestClientImplementsInterface(t *testing.T) {
	var _ pkgrpc.EthClient = (*Client)(nil)
}

func TestNewClient_InvalidEndpoint(t *testing.T) {
	_, err := NewClient(context.Background(), config.ChainConfig{RPCURL: "ftp://localhost:8545"},
		logger.NewNopLogger())
	require.Error(t, err)
}

func TestClient_BlockNumber(t *testing.T) {
	client := newHTTPTestClient(t, &fakeEthService{head: 42})

	head, err := client.BlockNumber(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(42), head)
}

func TestClient_WatchLogsFallsBackToPolling(t *testing.T) {
	svc := &fakeEthService{head: 10}
	client := newHTTPTestClient(t, svc)

	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	topic := common.HexToHash("0x01")

	// emitted before watching, must not be delivered
	svc.mine(types.Log{Address: address, Topics: []common.Hash{topic}, Data: []byte{}})

	ch := make(chan types.Log, 4)
	sub, err := client.WatchLogs(context.Background(), address, ch)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	svc.mine(types.Log{Address: address, Topics: []common.Hash{topic}, Data: []byte{1}, Index: 0})
	svc.mine(types.Log{Address: address, Topics: []common.Hash{topic}, Data: []byte{2}, Index: 0})

	var received []types.Log
	require.Eventually(t, func() bool {
		for {
			select {
			case l := <-ch:
				received = append(received, l)
			default:
				return len(received) == 2
			}
		}
	}, 2*time.Second, 10*time.Millisecond)

	require.Equal(t, []byte{1}, received[0].Data)
	require.Equal(t, []byte{2}, received[1].Data)
	require.Less(t, received[0].BlockNumber, received[1].BlockNumber)
}

func TestClient_GetLogs(t *testing.T) {
	svc := &fakeEthService{}
	client := newHTTPTestClient(t, svc)

	address := common.HexToAddress("0x1")
	svc.mine(types.Log{Address: address, Topics: []common.Hash{}, Data: []byte{}})
	svc.mine(types.Log{Address: address, Topics: []common.Hash{}, Data: []byte{}})

	logs, err := client.GetLogs(context.Background(), ethereum.FilterQuery{
		FromBlock: big.NewInt(2),
		ToBlock:   big.NewInt(2),
		Addresses: []common.Address{address},
	})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, uint64(2), logs[0].BlockNumber)
}

func TestClient_WatchLogsUsesSubscription(t *testing.T) {
	svc := &fakeSubscribingService{
		fakeEthService: &fakeEthService{head: 10},
		pending:        make(chan types.Log, 1),
		released:       make(chan struct{}),
	}

	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", svc))
	t.Cleanup(server.Stop)

	client := newClient(rpc.DialInProc(server), time.Second, logger.NewNopLogger())
	t.Cleanup(client.Close)

	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	ch := make(chan types.Log, 1)
	sub, err := client.WatchLogs(context.Background(), address, ch)
	require.NoError(t, err)
	require.IsType(t, &feed{}, sub)
	require.Equal(t, feedModeSubscription, sub.(*feed).mode)

	svc.pending <- types.Log{
		Address:     address,
		Topics:      []common.Hash{common.HexToHash("0x01")},
		Data:        []byte{7},
		BlockNumber: 11,
	}

	select {
	case l := <-ch:
		require.Equal(t, address, l.Address)
		require.Equal(t, []byte{7}, l.Data)
		require.Equal(t, uint64(11), l.BlockNumber)
	case <-time.After(2 * time.Second):
		t.Fatal("log was not pushed")
	}

	sub.Unsubscribe()

	select {
	case <-svc.released:
	case <-time.After(2 * time.Second):
		t.Fatal("server subscription was not released")
	}
	require.Zero(t, svc.pollCount())
}
