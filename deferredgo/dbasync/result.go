package dbasync

import "errors"

func NewResult(lastInsertId, rowsAffected int64) ResultImp {
	return ResultImp{lastInsertId, rowsAffected}
}

// ResultImp is the success value of a triggered Exec deferred. A statement
// populates exactly one of the two channels: RETURNING inserts carry the
// generated id, everything else the affected row count; asking for the
// other one reports the driver limitation instead of a silent zero.
type ResultImp struct {
	lastInsertId int64
	rowsAffected int64
}

func (r ResultImp) LastInsertId() (int64, error) {
	if r.rowsAffected == 0 {
		return r.lastInsertId, nil
	} else {
		return 0, errors.New("LastInsertId is not supported by this driver")
	}
}

func (r ResultImp) RowsAffected() (int64, error) {
	if r.lastInsertId == 0 {
		return r.rowsAffected, nil
	} else {
		return 0, errors.New("RowsAffected is not supported by INSERT command")
	}
}
