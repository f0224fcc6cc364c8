package controllers

import "errors"

var ErrNoPermission = errors.New("you don't have permission for this action")
