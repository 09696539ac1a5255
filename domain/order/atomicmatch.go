package order

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gosea/domain"
)

// AtomicMatchParameters is the exact positional tuple the exchange
// contract's atomic match entry point takes. Slot order is contractual and
// must never be permuted.
type AtomicMatchParameters struct {
	// buy order slots 0-6, sell order slots 7-13:
	// exchange, maker, taker, feeRecipient, target, staticTarget, paymentToken
	Addrs [14]common.Address

	// buy order slots 0-8, sell order slots 9-17: makerRelayerFee,
	// takerRelayerFee, makerProtocolFee, takerProtocolFee, basePrice, extra,
	// listingTime, expirationTime, salt
	Uints [18]*big.Int

	// feeMethod, side, saleKind, howToCall per order, buy first
	FeeMethodsSidesKindsHowToCalls [8]uint8

	CalldataBuy            []byte
	CalldataSell           []byte
	ReplacementPatternBuy  []byte
	ReplacementPatternSell []byte
	StaticExtradataBuy     []byte
	StaticExtradataSell    []byte

	// signature v for the buy then the sell order
	Vs [2]uint8

	// buy r, buy s, sell r, sell s, then the match metadata word
	RssMetadata [5][32]byte
}

func toWord(hex string) ([32]byte, error) {
	var w [32]byte
	if hex == "" {
		return w, nil
	}
	b, err := hexutil.Decode(hex)
	if err != nil {
		return w, err
	}
	if len(b) > 32 {
		return w, domain.ErrInvalidSignature
	}
	copy(w[32-len(b):], b)
	return w, nil
}

func decodeBytesField(hex string) ([]byte, error) {
	if hex == "" {
		return []byte{}, nil
	}
	return hexutil.Decode(hex)
}

// AssembleAtomicMatch lays a matched buy/sell pair out into the contract's
// positional tuple. Both orders must be signed and non-terminal.
func AssembleAtomicMatch(buy, sell *Order, metadata [32]byte) (*AtomicMatchParameters, error) {
	if buy.Side != SideBuy || sell.Side != SideSell {
		return nil, domain.ErrSideMismatch
	}
	if err := buy.CanMatch(); err != nil {
		return nil, xerrors.Errorf("buy order: %w", err)
	}
	if err := sell.CanMatch(); err != nil {
		return nil, xerrors.Errorf("sell order: %w", err)
	}

	p := &AtomicMatchParameters{}

	for i, o := range []*Order{buy, sell} {
		base := i * 7
		p.Addrs[base+0] = common.HexToAddress(o.Exchange.ToLowerStr())
		p.Addrs[base+1] = common.HexToAddress(o.Maker.ToLowerStr())
		p.Addrs[base+2] = common.HexToAddress(o.Taker.ToLowerStr())
		p.Addrs[base+3] = common.HexToAddress(o.FeeRecipient.ToLowerStr())
		p.Addrs[base+4] = common.HexToAddress(o.Target.ToLowerStr())
		p.Addrs[base+5] = common.HexToAddress(o.StaticTarget.ToLowerStr())
		p.Addrs[base+6] = common.HexToAddress(o.PaymentToken.ToLowerStr())

		ubase := i * 9
		for j, n := range []*big.Int{
			o.MakerRelayerFee,
			o.TakerRelayerFee,
			o.MakerProtocolFee,
			o.TakerProtocolFee,
			o.BasePrice,
			o.Extra,
			o.ListingTime,
			o.ExpirationTime,
			o.Salt,
		} {
			if n == nil {
				n = domain.Big0
			}
			p.Uints[ubase+j] = new(big.Int).Set(n)
		}

		fbase := i * 4
		p.FeeMethodsSidesKindsHowToCalls[fbase+0] = uint8(o.FeeMethod)
		p.FeeMethodsSidesKindsHowToCalls[fbase+1] = uint8(o.Side)
		p.FeeMethodsSidesKindsHowToCalls[fbase+2] = uint8(o.SaleKind)
		p.FeeMethodsSidesKindsHowToCalls[fbase+3] = uint8(o.HowToCall)

		p.Vs[i] = uint8(o.Signature.V)

		r, err := toWord(o.Signature.R)
		if err != nil {
			return nil, xerrors.Errorf("signature r: %w", err)
		}
		s, err := toWord(o.Signature.S)
		if err != nil {
			return nil, xerrors.Errorf("signature s: %w", err)
		}
		p.RssMetadata[i*2+0] = r
		p.RssMetadata[i*2+1] = s
	}

	var err error
	if p.CalldataBuy, err = decodeBytesField(buy.Calldata); err != nil {
		return nil, xerrors.Errorf("buy calldata: %w", err)
	}
	if p.CalldataSell, err = decodeBytesField(sell.Calldata); err != nil {
		return nil, xerrors.Errorf("sell calldata: %w", err)
	}
	if p.ReplacementPatternBuy, err = decodeBytesField(buy.ReplacementPattern); err != nil {
		return nil, xerrors.Errorf("buy replacement pattern: %w", err)
	}
	if p.ReplacementPatternSell, err = decodeBytesField(sell.ReplacementPattern); err != nil {
		return nil, xerrors.Errorf("sell replacement pattern: %w", err)
	}
	if p.StaticExtradataBuy, err = decodeBytesField(buy.StaticExtradata); err != nil {
		return nil, xerrors.Errorf("buy static extradata: %w", err)
	}
	if p.StaticExtradataSell, err = decodeBytesField(sell.StaticExtradata); err != nil {
		return nil, xerrors.Errorf("sell static extradata: %w", err)
	}

	p.RssMetadata[4] = metadata

	return p, nil
}
