/*
DESCRIPTION
  logging.go defines the diagnostic logging seam used by the stereo engine,
  modeled on the ausocean/utils/logging.Logger interface used throughout the
  pack (see protocol/rtcp.Log and cmd/rv's wiring of it).

AUTHORS
  Dana Iversen <dana@fenwicklabs.io>

LICENSE
  Copyright (C) 2026 Fenwick Robotics Labs. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of Fenwick Robotics Labs.
*/

package stereo

// Logger is the minimal diagnostic interface the stereo engine needs. It is
// satisfied by github.com/ausocean/utils/logging.Logger, which cmd/svsmatch
// wires up against a rolling log file; tests and library callers that don't
// care about diagnostics use nopLogger.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})   {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}
func (nopLogger) Fatal(string, ...interface{})   {}
