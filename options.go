/*
 * options.go, part of gocube.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package cube

import "go.uber.org/zap"

//Options contains the settings for the cube readers.
//The zero value is not usable, get one with DefaultOptions.
type Options struct {
	logger      *zap.Logger
	maxValues   int  //largest nx*ny*nz*nvals accepted. 0 means no limit.
	inferValues bool //take nvals from the orbital line when the header doesn't give it.
}

//DefaultOptions returns options for the canonical, strict, reading
//of a cube file, with logging disabled.
func DefaultOptions() *Options {
	r := new(Options)
	r.logger = zap.NewNop()
	r.maxValues = 0
	r.inferValues = false
	return r
}

//Logger returns the logger used by the reader, and sets it to a new
//value, if a non-nil one is given.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}

//MaxValues returns the largest number of grid values that the reader
//will accept (0 means unlimited), and sets it to a new value, if given.
//Negative values are ignored.
func (O *Options) MaxValues(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.maxValues = n[0]
	}
	return O.maxValues
}

//InferValues returns whether the number of values per voxel is taken
//from the orbital-index line when the header's atom line does not give it,
//and sets it, if a value is given. When false (the default) such a file
//is read as having one value per voxel, and a larger orbital count is an error.
func (O *Options) InferValues(b ...bool) bool {
	if len(b) > 0 {
		O.inferValues = b[0]
	}
	return O.inferValues
}

//pickOptions returns the first non-nil options given, or the defaults.
func pickOptions(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		o := *opts[0]
		if o.logger == nil {
			o.logger = zap.NewNop()
		}
		return &o
	}
	return DefaultOptions()
}
