package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/anyproto/any-stark/app"
	"github.com/anyproto/any-stark/app/logger"
	"github.com/anyproto/any-stark/config"
	"github.com/anyproto/any-stark/curve"
	"github.com/anyproto/any-stark/curve/secp256k1"
	"github.com/anyproto/any-stark/curve/stark"
	"github.com/anyproto/any-stark/keycodec"
)

var log = logger.NewNamed("main")

var errUsage = errors.New("usage")

const usage = `usage: starkkey [flags] <command> [args]

commands:
  keypair <privateKey>     print the key pair and the parity of the public y
  pubkey <x> <odd|even>    print the full public point
  sig-encode <r> <s>       print the serialized signature
  sig-decode <signature>   print r and s of a serialized signature

flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			log.Error("command failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("starkkey", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flagConfigFile := fs.String("c", "", "path to config file")
	flagCurve := fs.String("curve", "", "override the configured curve (stark or secp256k1)")
	flagVersion := fs.Bool("v", false, "show version and exit")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *flagVersion {
		fmt.Fprintln(stdout, app.VersionDescription())
		return nil
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	conf := config.Default()
	if *flagConfigFile != "" {
		var err error
		if conf, err = config.NewFromFile(*flagConfigFile); err != nil {
			return fmt.Errorf("can't open config file: %w", err)
		}
	}
	if *flagCurve != "" {
		conf.Curve.Name = *flagCurve
		if err := conf.Validate(); err != nil {
			return err
		}
	}
	if err := conf.GetLogger().ApplyGlobal(); err != nil {
		return fmt.Errorf("can't apply log config: %w", err)
	}

	a := new(app.App)
	codec := keycodec.New(nil)
	Bootstrap(a, conf, codec)
	if err := a.Start(); err != nil {
		return err
	}
	log.Debug("app started", zap.String("curve", codec.Provider().CurveName()))

	out, err := execute(codec, fs.Arg(0), fs.Args()[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func Bootstrap(a *app.App, conf *config.Config, codec *keycodec.Codec) {
	a.Register(conf).
		Register(newProvider(conf.GetCurve().Name)).
		Register(codec)
}

func newProvider(name string) curve.Provider {
	if name == config.CurveSecp256k1 {
		return secp256k1.New()
	}
	return stark.New()
}
