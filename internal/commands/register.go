package commands

import "github.com/ar-go/nucleus/internal/command"

// Register installs the full baseline command kernel into r.
func Register(r *command.Registry) {
	registerMotion(r)
	registerEditing(r)
	registerMark(r)
	registerKill(r)
	registerHistory(r)
	registerFile(r)
	registerWindow(r)
	registerPrefix(r)
	registerDescribe(r)
}
