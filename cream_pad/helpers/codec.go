package helpers

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	binary "github.com/gagliardetto/binary"

	"github.com/bilalafzal97/cream-pad-program-library/cream_pad/shared"
)

// Accounts are serialized borsh-style behind an 8-byte anchor discriminator:
// sha256("account:<Name>")[..8].

var ErrAccountDataTooShort = errors.New("account data shorter than discriminator")

func AccountDiscriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

func marshalAccount(name string, v interface{}) ([]byte, error) {
	disc := AccountDiscriminator(name)
	buf := new(bytes.Buffer)
	buf.Write(disc[:])
	if err := binary.NewBorshEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func unmarshalAccount(name string, data []byte, v interface{}) error {
	if len(data) < 8 {
		return ErrAccountDataTooShort
	}
	disc := AccountDiscriminator(name)
	if !bytes.Equal(data[:8], disc[:]) {
		return fmt.Errorf("account discriminator mismatch for %s", name)
	}
	if err := binary.NewBorshDecoder(data[8:]).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func MarshalCreamPadConfig(v *shared.CreamPadConfig) ([]byte, error) {
	return marshalAccount("CreamPadAccount", v)
}

func ParseCreamPadConfig(data []byte) (*shared.CreamPadConfig, error) {
	out := new(shared.CreamPadConfig)
	if err := unmarshalAccount("CreamPadAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalAuction(v *shared.AuctionAccount) ([]byte, error) {
	return marshalAccount("AuctionAccount", v)
}

func ParseAuction(data []byte) (*shared.AuctionAccount, error) {
	out := new(shared.AuctionAccount)
	if err := unmarshalAccount("AuctionAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalAuctionRound(v *shared.AuctionRoundAccount) ([]byte, error) {
	return marshalAccount("AuctionRoundAccount", v)
}

func ParseAuctionRound(data []byte) (*shared.AuctionRoundAccount, error) {
	out := new(shared.AuctionRoundAccount)
	if err := unmarshalAccount("AuctionRoundAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserAuction(v *shared.UserAuctionAccount) ([]byte, error) {
	return marshalAccount("UserAuctionAccount", v)
}

func ParseUserAuction(data []byte) (*shared.UserAuctionAccount, error) {
	out := new(shared.UserAuctionAccount)
	if err := unmarshalAccount("UserAuctionAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserAuctionRound(v *shared.UserAuctionRoundAccount) ([]byte, error) {
	return marshalAccount("UserAuctionRoundAccount", v)
}

func ParseUserAuctionRound(data []byte) (*shared.UserAuctionRoundAccount, error) {
	out := new(shared.UserAuctionRoundAccount)
	if err := unmarshalAccount("UserAuctionRoundAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserAuctionBuyReceipt(v *shared.UserAuctionBuyReceipt) ([]byte, error) {
	return marshalAccount("UserAuctionBuyReceiptAccount", v)
}

func ParseUserAuctionBuyReceipt(data []byte) (*shared.UserAuctionBuyReceipt, error) {
	out := new(shared.UserAuctionBuyReceipt)
	if err := unmarshalAccount("UserAuctionBuyReceiptAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserAuctionUnsoldDistribution(v *shared.UserAuctionUnsoldDistribution) ([]byte, error) {
	return marshalAccount("UserAuctionUnsoldDistributionAccount", v)
}

func ParseUserAuctionUnsoldDistribution(data []byte) (*shared.UserAuctionUnsoldDistribution, error) {
	out := new(shared.UserAuctionUnsoldDistribution)
	if err := unmarshalAccount("UserAuctionUnsoldDistributionAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalCollectionAuction(v *shared.CollectionAuctionAccount) ([]byte, error) {
	return marshalAccount("CollectionAuctionAccount", v)
}

func ParseCollectionAuction(data []byte) (*shared.CollectionAuctionAccount, error) {
	out := new(shared.CollectionAuctionAccount)
	if err := unmarshalAccount("CollectionAuctionAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalCollectionAuctionRound(v *shared.CollectionAuctionRoundAccount) ([]byte, error) {
	return marshalAccount("CollectionAuctionRoundAccount", v)
}

func ParseCollectionAuctionRound(data []byte) (*shared.CollectionAuctionRoundAccount, error) {
	out := new(shared.CollectionAuctionRoundAccount)
	if err := unmarshalAccount("CollectionAuctionRoundAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserCollectionAuction(v *shared.UserCollectionAuctionAccount) ([]byte, error) {
	return marshalAccount("UserCollectionAuctionAccount", v)
}

func ParseUserCollectionAuction(data []byte) (*shared.UserCollectionAuctionAccount, error) {
	out := new(shared.UserCollectionAuctionAccount)
	if err := unmarshalAccount("UserCollectionAuctionAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserCollectionAuctionRound(v *shared.UserCollectionAuctionRoundAccount) ([]byte, error) {
	return marshalAccount("UserCollectionAuctionRoundAccount", v)
}

func ParseUserCollectionAuctionRound(data []byte) (*shared.UserCollectionAuctionRoundAccount, error) {
	out := new(shared.UserCollectionAuctionRoundAccount)
	if err := unmarshalAccount("UserCollectionAuctionRoundAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserCollectionAuctionBuyReceipt(v *shared.UserCollectionAuctionBuyReceipt) ([]byte, error) {
	return marshalAccount("UserCollectionAuctionBuyReceiptAccount", v)
}

func ParseUserCollectionAuctionBuyReceipt(data []byte) (*shared.UserCollectionAuctionBuyReceipt, error) {
	out := new(shared.UserCollectionAuctionBuyReceipt)
	if err := unmarshalAccount("UserCollectionAuctionBuyReceiptAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func MarshalUserCollectionAuctionUnsoldDistribution(v *shared.UserCollectionAuctionUnsoldDistribution) ([]byte, error) {
	return marshalAccount("UserCollectionAuctionUnsoldDistributionAccount", v)
}

func ParseUserCollectionAuctionUnsoldDistribution(data []byte) (*shared.UserCollectionAuctionUnsoldDistribution, error) {
	out := new(shared.UserCollectionAuctionUnsoldDistribution)
	if err := unmarshalAccount("UserCollectionAuctionUnsoldDistributionAccount", data, out); err != nil {
		return nil, err
	}
	return out, nil
}
