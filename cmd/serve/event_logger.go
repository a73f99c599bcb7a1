// Copyright 2026 The headerkey Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// eventLogger routes fx lifecycle events to zerolog. Successful events are logged
// at trace level, failures at error level.
type eventLogger struct {
	l zerolog.Logger
}

func (l *eventLogger) LogEvent(event fxevent.Event) { // nolint: cyclop
	switch evt := event.(type) {
	case *fxevent.OnStartExecuting:
		l.l.Trace().
			Str("_functionName", evt.FunctionName).
			Str("_caller", evt.CallerName).
			Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		l.hookExecuted("OnStart", evt.FunctionName, evt.CallerName, evt.Runtime.String(), evt.Err)
	case *fxevent.OnStopExecuting:
		l.l.Trace().
			Str("_functionName", evt.FunctionName).
			Str("_caller", evt.CallerName).
			Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		l.hookExecuted("OnStop", evt.FunctionName, evt.CallerName, evt.Runtime.String(), evt.Err)
	case *fxevent.Supplied:
		l.moduleEvent(evt.ModuleName, evt.Err, "supplying").
			Str("_type", evt.TypeName).
			Msg("Module supplied")
	case *fxevent.Provided:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).Str("_module", evt.ModuleName).Msg("Error encountered while providing module")

			return
		}

		for _, rtype := range evt.OutputTypeNames {
			l.l.Trace().
				Str("_module", evt.ModuleName).
				Str("_constructor", evt.ConstructorName).
				Str("_type", rtype).
				Msg("Module provided")
		}
	case *fxevent.Decorated:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).Str("_module", evt.ModuleName).Msg("Error encountered while decorating module")

			return
		}

		for _, rtype := range evt.OutputTypeNames {
			l.l.Trace().
				Str("_module", evt.ModuleName).
				Str("_decorator", evt.DecoratorName).
				Str("_type", rtype).
				Msg("Module decorated")
		}
	case *fxevent.Invoking:
		l.l.Trace().Str("_module", evt.ModuleName).Str("_function", evt.FunctionName).Msg("Invoking module")
	case *fxevent.Invoked:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).
				Str("_module", evt.ModuleName).
				Str("_function", evt.FunctionName).
				Str("_stack", evt.Trace).
				Msg("Invoke failed")
		}
	case *fxevent.Stopping:
		l.l.Trace().Str("_signal", strings.ToUpper(evt.Signal.String())).Msg("Received signal")
	case *fxevent.Stopped:
		l.outcome(evt.Err, "Stop failed", "Stopped")
	case *fxevent.RollingBack:
		l.l.Error().Err(evt.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		l.outcome(evt.Err, "Rollback failed", "Rollback succeeded")
	case *fxevent.Started:
		l.outcome(evt.Err, "Start failed", "Started")
	case *fxevent.LoggerInitialized:
		if evt.Err != nil {
			l.l.Error().Err(evt.Err).Msg("Custom logger initialization failed")
		}
	}
}

func (l *eventLogger) hookExecuted(hook, function, caller, runtime string, err error) {
	if err != nil {
		l.l.Error().Err(err).
			Str("_functionName", function).
			Str("_caller", caller).
			Msg(hook + " hook failed")

		return
	}

	l.l.Trace().
		Str("_functionName", function).
		Str("_caller", caller).
		Str("_runtime", runtime).
		Msg(hook + " hook executed")
}

func (l *eventLogger) moduleEvent(module string, err error, action string) *zerolog.Event {
	if err != nil {
		l.l.Error().Err(err).Str("_module", module).Msg("Error encountered while " + action + " module")

		return nil
	}

	return l.l.Trace().Str("_module", module)
}

func (l *eventLogger) outcome(err error, failed, succeeded string) {
	if err != nil {
		l.l.Error().Err(err).Msg(failed)

		return
	}

	l.l.Trace().Msg(succeeded)
}
