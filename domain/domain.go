package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big0     = big.NewInt(0)
	Big1     = big.NewInt(1)
	Big10000 = big.NewInt(10000)
)

// MaxBasisPoints is the upper bound of every fee field, parts per 10000
const MaxBasisPoints = 10000

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

func (i TokenId) ToHexString() (string, error) {
	id, err := i.ToBigInt()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%064x", id), nil
}

type BlockNumber uint64

type TxHash string

type BlockHash string

type OrderHash string

func (h OrderHash) ToLower() OrderHash {
	return OrderHash(strings.ToLower(string(h)))
}

func (h OrderHash) IsEmpty() bool {
	return len(h) == 0
}

// ToBigInt parses decimal strings into big integers. Wei amounts exceed
// float64 precision so they never go through a native float.
func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}

// ChainIdWrappedNativeMap maps a chain to its canonical wrapped native token,
// used by wrap/unwrap prompts
var ChainIdWrappedNativeMap = map[ChainId]Address{
	// eth
	1: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
	// ropsten
	3: "0x0a180a76e4466bf68a7f86fb029bed3cccfaaac5",
	// rinkeby
	4: "0xc778417e063141139fce010982780140aa0cd5ab",
	// goerli
	5: "0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6",
}
