package server

import "context"

func registerSignalTriggers(context.Context, *Server) {}
