package client

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/treeforest/bitcoinutils/config"
	"github.com/treeforest/bitcoinutils/pkg/graceful"
	"github.com/treeforest/bitcoinutils/server"
	log "github.com/treeforest/logger"
)

// ErrUsage 命令或参数不正确，已输出帮助信息
var ErrUsage = errors.New("invalid command usage")

type Command struct {
	conf *config.Config
	out  io.Writer
}

func New(conf *config.Config, out io.Writer) *Command {
	return &Command{conf: conf, out: out}
}

func (c *Command) printUsage() {
	fmt.Fprintln(c.out, "Usage:")
	// 编码
	fmt.Fprintf(c.out, "\tencode -data DATA [-hex] [-remote URL] -- base58 编码\n")
	fmt.Fprintf(c.out, "\tencodecheck -data DATA [-hex] [-remote URL] -- base58check 编码\n")
	fmt.Fprintf(c.out, "\t\t-data -- 待编码数据，默认为 ASCII 文本\n")
	fmt.Fprintf(c.out, "\t\t-hex -- DATA 为 hex 字符串\n")
	// 解码
	fmt.Fprintf(c.out, "\tdecode -data DATA [-remote URL] -- base58 解码\n")
	fmt.Fprintf(c.out, "\tdecodecheck -data DATA [-remote URL] -- base58check 解码并验证校验码\n")
	fmt.Fprintf(c.out, "\t\t-remote -- 使用远程编解码服务，例如 http://localhost:8080\n")
	// 字母表
	fmt.Fprintf(c.out, "\talphabet -- 输出当前字母表\n")
	// 服务
	fmt.Fprintf(c.out, "\tserve -- 启动 http 编解码服务\n")
}

// Run 执行 args 描述的子命令，args 不包含程序名
func (c *Command) Run(args []string) error {
	// 编码
	cmdEncode := flag.NewFlagSet("encode", flag.ContinueOnError)
	encodeData := cmdEncode.String("data", "", "待编码数据")
	encodeHex := cmdEncode.Bool("hex", false, "DATA 为 hex 字符串")
	encodeRemote := cmdEncode.String("remote", "", "远程编解码服务地址")
	cmdEncodeCheck := flag.NewFlagSet("encodecheck", flag.ContinueOnError)
	encodeCheckData := cmdEncodeCheck.String("data", "", "待编码数据")
	encodeCheckHex := cmdEncodeCheck.Bool("hex", false, "DATA 为 hex 字符串")
	encodeCheckRemote := cmdEncodeCheck.String("remote", "", "远程编解码服务地址")
	// 解码
	cmdDecode := flag.NewFlagSet("decode", flag.ContinueOnError)
	decodeData := cmdDecode.String("data", "", "待解码数据")
	decodeRemote := cmdDecode.String("remote", "", "远程编解码服务地址")
	cmdDecodeCheck := flag.NewFlagSet("decodecheck", flag.ContinueOnError)
	decodeCheckData := cmdDecodeCheck.String("data", "", "待解码数据")
	decodeCheckRemote := cmdDecodeCheck.String("remote", "", "远程编解码服务地址")
	// 字母表
	cmdAlphabet := flag.NewFlagSet("alphabet", flag.ContinueOnError)
	// 服务
	cmdServe := flag.NewFlagSet("serve", flag.ContinueOnError)

	if len(args) < 1 {
		c.printUsage()
		return ErrUsage
	}

	switch args[0] {
	case "encode":
		if !parseCommand(cmdEncode, args[1:]) {
			goto HELP
		}
		return c.encode(*encodeData, *encodeHex, *encodeRemote, false)
	case "encodecheck":
		if !parseCommand(cmdEncodeCheck, args[1:]) {
			goto HELP
		}
		return c.encode(*encodeCheckData, *encodeCheckHex, *encodeCheckRemote, true)
	case "decode":
		if !parseCommand(cmdDecode, args[1:]) {
			goto HELP
		}
		return c.decode(*decodeData, *decodeRemote, false)
	case "decodecheck":
		if !parseCommand(cmdDecodeCheck, args[1:]) {
			goto HELP
		}
		return c.decode(*decodeCheckData, *decodeCheckRemote, true)
	case "alphabet":
		if !parseCommand(cmdAlphabet, args[1:]) {
			goto HELP
		}
		return c.printAlphabet()
	case "serve":
		if !parseCommand(cmdServe, args[1:]) {
			goto HELP
		}
		return c.serve()
	}
HELP:
	c.printUsage()
	return ErrUsage
}

func (c *Command) codec(remote string) (Codec, error) {
	if remote != "" {
		log.Debug("use remote codec:", remote)
		return NewHttpClient(remote), nil
	}
	alphabet, err := c.conf.LoadAlphabet()
	if err != nil {
		return nil, err
	}
	return NewLocalCodec(alphabet), nil
}

func (c *Command) encode(data string, isHex bool, remote string, check bool) error {
	payload, err := parseInput(data, isHex)
	if err != nil {
		return err
	}
	codec, err := c.codec(remote)
	if err != nil {
		return err
	}

	var encoded string
	if check {
		encoded, err = codec.EncodeCheck(payload)
	} else {
		encoded, err = codec.Encode(payload)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, encoded)
	return nil
}

func (c *Command) decode(data string, remote string, check bool) error {
	codec, err := c.codec(remote)
	if err != nil {
		return err
	}

	var decoded []byte
	if check {
		decoded, err = codec.DecodeCheck(data)
	} else {
		decoded, err = codec.Decode(data)
	}
	if err != nil {
		return err
	}

	if c.conf.HexOutput {
		fmt.Fprintln(c.out, hex.EncodeToString(decoded))
	} else {
		fmt.Fprintln(c.out, string(decoded))
	}
	return nil
}

func (c *Command) printAlphabet() error {
	alphabet, err := c.conf.LoadAlphabet()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, alphabet.String())
	return nil
}

func (c *Command) serve() error {
	srv, err := server.NewHttpServer(c.conf)
	if err != nil {
		return err
	}
	go srv.Run()

	graceful.Stop(srv.Stop)
	return nil
}
