package main

import (
	"fmt"

	"github.com/anyproto/any-stark/keycodec"
	"github.com/anyproto/any-stark/util/hex32"
)

type keyPairOutput struct {
	keycodec.KeyPair
	PublicKeyYIsOdd bool `json:"publicKeyYIsOdd"`
}

type pointOutput struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type serializedOutput struct {
	Signature string `json:"signature"`
}

func execute(codec *keycodec.Codec, cmd string, args []string) (any, error) {
	switch cmd {
	case "keypair":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: keypair <privateKey>", errUsage)
		}
		return keyPair(codec, args[0])
	case "pubkey":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: pubkey <x> <odd|even>", errUsage)
		}
		return publicPoint(codec, args[0], args[1])
	case "sig-encode":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: sig-encode <r> <s>", errUsage)
		}
		s, err := keycodec.SerializeSignature(keycodec.Signature{R: args[0], S: args[1]})
		if err != nil {
			return nil, err
		}
		return serializedOutput{Signature: s}, nil
	case "sig-decode":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: sig-decode <signature>", errUsage)
		}
		return keycodec.DeserializeSignature(args[0])
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func keyPair(codec *keycodec.Codec, privateKey string) (out keyPairOutput, err error) {
	h, err := codec.DeriveKeyHandle(keycodec.PrivateKey(privateKey))
	if err != nil {
		return
	}
	if out.KeyPair, err = keycodec.ToSimpleKeyPair(h); err != nil {
		return
	}
	out.PublicKeyYIsOdd = keycodec.PublicKeyParity(h)
	return
}

func publicPoint(codec *keycodec.Codec, x, parity string) (out pointOutput, err error) {
	var isOdd bool
	switch parity {
	case "odd":
		isOdd = true
	case "even":
	default:
		return out, fmt.Errorf("%w: parity must be odd or even, got %q", errUsage, parity)
	}
	h, err := codec.DerivePublicKeyHandle(x, isOdd)
	if err != nil {
		return
	}
	pub := h.PublicKey()
	if out.X, err = hex32.FromBigInt(pub.X); err != nil {
		return
	}
	out.Y, err = hex32.FromBigInt(pub.Y)
	return
}
