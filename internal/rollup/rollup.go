// Package rollup reads the M3tering rollup contract.
package rollup

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// DefaultContract is the rollup contract on Sepolia.
const DefaultContract = "0xAFaA8090C17bE0a94C65a9C2BDA715060d38B9B9"

const contractABI = `[{"inputs":[],"name":"chainLength","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

const methodChainLength = "chainLength"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Caller executes read-only contract calls; *ethclient.Client satisfies it.
	Caller interface {
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client reads rollup state.
type Client struct {
	caller   Caller
	contract common.Address
	abi      abi.ABI
	metrics  Metrics
}

// Dial connects to an Ethereum JSON-RPC endpoint.
func Dial(ctx context.Context, rpcURL, contract string, metrics Metrics) (*Client, *ethclient.Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial ethereum rpc: %w", err)
	}
	c, err := NewClient(eth, contract, metrics)
	if err != nil {
		eth.Close()
		return nil, nil, err
	}
	return c, eth, nil
}

// NewClient builds a Client; an empty contract means DefaultContract.
func NewClient(caller Caller, contract string, metrics Metrics) (*Client, error) {
	if caller == nil {
		return nil, errors.New("rollup caller is required")
	}
	if metrics == nil {
		return nil, errors.New("rollup metrics is required")
	}
	if contract == "" {
		contract = DefaultContract
	}
	if !common.IsHexAddress(contract) {
		return nil, fmt.Errorf("invalid rollup contract address %q", contract)
	}
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("parse rollup abi: %w", err)
	}
	return &Client{
		caller:   caller,
		contract: common.HexToAddress(contract),
		abi:      parsed,
		metrics:  metrics,
	}, nil
}

// ChainLength returns the number of blocks committed to the rollup.
func (c *Client) ChainLength(ctx context.Context) (length *big.Int, err error) {
	defer func(started time.Time) {
		c.metrics.Observe("chain_length", err, started)
	}(time.Now())

	data, err := c.abi.Pack(methodChainLength)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodChainLength, err)
	}
	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", methodChainLength, err)
	}
	values, err := c.abi.Unpack(methodChainLength, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", methodChainLength, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unpack %s: got %d values", methodChainLength, len(values))
	}
	length, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack %s: unexpected type %T", methodChainLength, values[0])
	}
	return length, nil
}
