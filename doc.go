// Package labsh provides a sandboxed, in-memory Unix-like lab shell for
// teaching environments.
//
// Every session gets its own virtual file system seeded with a starter tree
// and a terminal emulator that runs a fixed set of builtins (ls, cd, cat,
// mkdir, rm, ...) under a sandbox policy. Nothing touches the host file
// system or spawns processes.
//
//	srv, _ := labsh.New()
//	sessions := srv.Sessions()
//	s, _ := sessions.Open(ctx)
//	out := s.Execute(ctx, "cat examples/hello.c")
//	_ = sessions.Save(ctx, s.ID)
//
// Sessions can be persisted to any afs location (file://, mem://, s3://)
// and are also reachable through the lab action service registered in
// Actions().
package labsh
