// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "log/slog"

// logger receives verbose tracing of mirror graph mutations and pokes,
// mirroring the original's sp_log(..., SP_LOG_VERBOSE, ...) calls. It
// defaults to slog's package default and can be overridden with SetLogger.
var logger = slog.Default()

// SetLogger replaces the logger used for verbose FIFO tracing. Passing nil
// restores slog's default logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

func logMirror(dstOwner, srcOwner string) {
	logger.Debug("mirroring output FIFO", "src", srcOwner, "dst", dstOwner)
}

func logUnmirror(dstOwner, srcOwner string) {
	logger.Debug("unmirroring output FIFO", "src", srcOwner, "dst", dstOwner)
}

func logUnmirrorAllStart(owner string) {
	logger.Debug("unmirroring all", "owner", owner)
}

func logUnmirrorAllFromSource(owner, srcOwner string) {
	logger.Debug("unmirroring all: from source", "owner", owner, "source", srcOwner)
}

func logUnmirrorAllFromDest(owner, dstOwner string) {
	logger.Debug("unmirroring all: from dest", "owner", owner, "dest", dstOwner)
}

func logPoke(owner string) {
	logger.Debug("poking FIFO", "owner", owner)
}
