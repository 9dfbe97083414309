// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/katalvlaran/valveflow/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a production (JSON) or development (console) logger at
// cfg.LogLevel, writing to w.
func newLogger(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encCfg)
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)

	return zap.New(core), nil
}
