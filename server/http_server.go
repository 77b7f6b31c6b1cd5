package server

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/treeforest/bitcoinutils/base58"
	"github.com/treeforest/bitcoinutils/base58check"
	"github.com/treeforest/bitcoinutils/config"
	"github.com/treeforest/bitcoinutils/pkg/utils"
	log "github.com/treeforest/logger"
)

const (
	FormatHex  = "hex"
	FormatText = "text"

	requestIdHeader = "X-Request-Id"
)

// HttpServer 通过 http 提供 base58 / base58check 编解码
type HttpServer struct {
	port     int
	timeout  time.Duration
	alphabet *base58.Alphabet
	codec    *base58check.Codec
	srv      *http.Server
}

func NewHttpServer(conf *config.Config) (*HttpServer, error) {
	alphabet, err := conf.LoadAlphabet()
	if err != nil {
		return nil, err
	}
	s := &HttpServer{
		port:     conf.HttpServerPort,
		timeout:  conf.ShutdownTimeout,
		alphabet: alphabet,
		codec:    &base58check.Codec{Alphabet: alphabet, Hash: base58check.Default.Hash},
	}
	s.srv = &http.Server{Addr: fmt.Sprintf(":%d", s.port), Handler: s.Handler()}
	return s, nil
}

// Handler 构建路由
func (s *HttpServer) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestId())

	r.GET("/health", s.handleHealth)
	r.GET("/alphabet", s.handleGetAlphabet)
	r.GET("/validate", s.handleValidate)
	r.POST("/encode", s.handleEncode)
	r.POST("/decode", s.handleDecode)
	r.POST("/encode_check", s.handleEncodeCheck)
	r.POST("/decode_check", s.handleDecodeCheck)

	return r
}

// Run 阻塞直到服务退出
func (s *HttpServer) Run() {
	log.Infof("http server listen on :%d", s.port)
	err := s.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("http server run failed:", err)
	}
}

// Stop 等待处理中的请求结束，最长等待配置的超时时间
func (s *HttpServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Warn("http server shutdown:", err)
	}
	log.Info("http server stopped")
}

func requestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIdHeader, id)
		c.Set(requestIdHeader, id)
		c.Next()
	}
}

type Request struct {
	Data   string `json:"data"`
	Format string `json:"format"` // hex 或 text，编码时默认 hex
}

type Response struct {
	Result string `json:"result"`
}

func (s *HttpServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HttpServer) handleGetAlphabet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alphabet": s.alphabet.String()})
}

// handleValidate 使用配置的字母表验证
func (s *HttpServer) handleValidate(c *gin.Context) {
	data, ok := c.GetQuery("data")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": utils.IsValidCheck(s.codec, data)})
}

func (s *HttpServer) handleEncode(c *gin.Context) {
	payload, ok := s.bindPayload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Response{Result: string(s.alphabet.Encode(payload))})
}

func (s *HttpServer) handleEncodeCheck(c *gin.Context) {
	payload, ok := s.bindPayload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Response{Result: string(s.codec.Encode(payload))})
}

func (s *HttpServer) handleDecode(c *gin.Context) {
	s.decode(c, s.alphabet.DecodeString)
}

func (s *HttpServer) handleDecodeCheck(c *gin.Context) {
	s.decode(c, s.codec.DecodeString)
}

func (s *HttpServer) decode(c *gin.Context, fn func(string) ([]byte, error)) {
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	data, err := fn(req.Data)
	if err != nil {
		s.abort(c, err)
		return
	}

	switch req.Format {
	case "", FormatHex:
		c.JSON(http.StatusOK, Response{Result: hex.EncodeToString(data)})
	case FormatText:
		c.JSON(http.StatusOK, Response{Result: string(data)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format " + req.Format})
	}
}

// bindPayload 解析请求中待编码的数据
func (s *HttpServer) bindPayload(c *gin.Context) ([]byte, bool) {
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return nil, false
	}

	var (
		payload []byte
		err     error
	)
	switch req.Format {
	case "", FormatHex:
		payload, err = hex.DecodeString(req.Data)
		if err != nil {
			err = errors.Wrap(err, "invalid hex data")
		}
	case FormatText:
		payload, err = base58.ForceBytes(req.Data)
	default:
		err = errors.Errorf("unknown format %s", req.Format)
	}
	if err != nil {
		s.abort(c, err)
		return nil, false
	}
	return payload, true
}

func (s *HttpServer) abort(c *gin.Context, err error) {
	log.Debugf("request %v failed: %v", c.GetString(requestIdHeader), err)
	resp := gin.H{"error": err.Error()}
	if kind := base58check.Kind(err); kind != base58check.KindUnknown {
		resp["kind"] = kind
	}
	c.JSON(http.StatusBadRequest, resp)
}
