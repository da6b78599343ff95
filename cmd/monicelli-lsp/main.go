// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"monicelli/internal/lsp"
)

const lsName = "monicelli"

var log = commonlog.GetLogger("monicelli.lsp.server")

func main() {
	// Debug logging goes to stderr; stdout carries the protocol
	commonlog.Configure(1, nil)

	monicelliHandler := lsp.NewMonicelliHandler()

	handler := protocol.Handler{
		Initialize:                     monicelliHandler.Initialize,
		Initialized:                    monicelliHandler.Initialized,
		Shutdown:                       monicelliHandler.Shutdown,
		SetTrace:                       monicelliHandler.SetTrace,
		TextDocumentDidOpen:            monicelliHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           monicelliHandler.TextDocumentDidClose,
		TextDocumentDidChange:          monicelliHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: monicelliHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting Monicelli language server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
