/*
 * errors.go, part of gonci.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package criteria

import "fmt"

//ConfigurationError is returned for thresholds that can't be used:
//unknown criteria or parameters, wrong counts and values out of their domain.
//It is always critical.
type ConfigurationError struct {
	key     string //criterion key
	param   string //parameter name, if any
	message string
	deco    []string
}

func newConfigError(key, param, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{key: key, param: param, message: fmt.Sprintf(format, args...)}
}

func (err *ConfigurationError) Error() string {
	if err.param != "" {
		return fmt.Sprintf("configuration error in %s (%s): %s", err.key, err.param, err.message)
	}
	if err.key != "" {
		return fmt.Sprintf("configuration error in %s: %s", err.key, err.message)
	}
	return "configuration error: " + err.message
}

//Decorate adds new information to the error
func (err *ConfigurationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true.
func (err *ConfigurationError) Critical() bool { return true }

//Key returns the criterion the error refers to.
func (err *ConfigurationError) Key() string { return err.key }

//Param returns the parameter the error refers to, or an empty string.
func (err *ConfigurationError) Param() string { return err.param }

//EvalError is returned when one criterion can't be evaluated on one pair,
//for instance because an element has no van der Waals radius. It is not critical.
type EvalError struct {
	message string
	deco    []string
}

func (err *EvalError) Error() string {
	return "evaluation error: " + err.message
}

//Decorate adds new information to the error
func (err *EvalError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns false.
func (err *EvalError) Critical() bool { return false }

//NewConfigurationError returns a ConfigurationError for the parameter param of
//the criterion or configuration section key.
func NewConfigurationError(key, param, format string, args ...interface{}) *ConfigurationError {
	return newConfigError(key, param, format, args...)
}
