package client

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/treeforest/bitcoinutils/base58"
	"github.com/treeforest/bitcoinutils/base58check"
	"github.com/treeforest/bitcoinutils/server"
)

// RemoteError 服务端返回的编解码错误，可通过 errors.Is 匹配对应的错误类别
type RemoteError struct {
	Kind    string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote: %s", e.Message)
}

func (e *RemoteError) Unwrap() error {
	switch e.Kind {
	case base58check.KindEncoding:
		return base58.ErrEncoding
	case base58check.KindInvalidCharacter:
		return base58.ErrInvalidCharacter
	case base58check.KindInvalidAlphabet:
		return base58.ErrInvalidAlphabet
	case base58check.KindChecksumMismatch:
		return base58check.ErrChecksumMismatch
	case base58check.KindMalformedInput:
		return base58check.ErrMalformedInput
	}
	return nil
}

// HttpClient 调用 server.HttpServer 完成编解码
type HttpClient struct {
	baseUrl string
	cli     *http.Client
}

func NewHttpClient(baseUrl string) *HttpClient {
	return &HttpClient{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		cli:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HttpClient) Encode(data []byte) (string, error) {
	return c.post("/encode", hex.EncodeToString(data))
}

func (c *HttpClient) EncodeCheck(data []byte) (string, error) {
	return c.post("/encode_check", hex.EncodeToString(data))
}

func (c *HttpClient) Decode(s string) ([]byte, error) {
	return c.decode("/decode", s)
}

func (c *HttpClient) DecodeCheck(s string) ([]byte, error) {
	return c.decode("/decode_check", s)
}

func (c *HttpClient) decode(path, s string) ([]byte, error) {
	result, err := c.post(path, s)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(result)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex in response")
	}
	return b, nil
}

func (c *HttpClient) post(path, data string) (string, error) {
	body, _ := json.Marshal(server.Request{Data: data, Format: server.FormatHex})
	resp, err := c.cli.Post(c.baseUrl+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if resp.StatusCode != http.StatusOK {
		type ErrResponse struct {
			Error string `json:"error"`
			Kind  string `json:"kind"`
		}
		e := ErrResponse{}
		if err = json.Unmarshal(raw, &e); err != nil {
			return "", errors.Errorf("http status %d: %s", resp.StatusCode, raw)
		}
		return "", &RemoteError{Kind: e.Kind, Message: e.Error}
	}

	r := server.Response{}
	if err = json.Unmarshal(raw, &r); err != nil {
		return "", errors.Wrap(err, "unmarshal response failed")
	}
	return r.Result, nil
}
