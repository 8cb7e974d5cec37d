package server

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-pqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-pqueue/pkg/common/http/handler"
	"github.com/huynhanx03/go-pqueue/pkg/common/http/response"
	"github.com/huynhanx03/go-pqueue/pkg/constraints"
	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
	"github.com/huynhanx03/go-pqueue/pkg/generator"
	"github.com/huynhanx03/go-pqueue/pkg/pqio"
)

const (
	opInsert      = "insert"
	opExtractMax  = "extract_max"
	opFindMax     = "find_max"
	opGetPriority = "get_priority"
	opModifyKey   = "modify_key"
	opIncreaseKey = "increase_key"
	opDecreaseKey = "decrease_key"
	opSize        = "size"
	opClear       = "clear"
	opFill        = "fill"
	opImport      = "import"
	opExport      = "export"
)

// FillRequest is the body of POST /v1/queue/fill.
type FillRequest struct {
	Size        int    `json:"size" validate:"gte=0,lte=1000000"`
	MinPriority int    `json:"min_priority"`
	MaxPriority int    `json:"max_priority" validate:"gtefield=MinPriority"`
	Seed        uint64 `json:"seed"`
}

type ValueResponse struct {
	Value int `json:"value"`
}

type CountResponse struct {
	Count int `json:"count"`
}

func queueError(op string, err error) error {
	if err == nil {
		return nil
	}
	return apperr.FromQueueError(op, err)
}

func (s *Server) insert() gin.HandlerFunc {
	return handler.WrapWithCode(response.CodeCreated, func(_ context.Context, req *InsertRequest) (ItemResponse, error) {
		err := s.locked(opInsert, func(q pqueue.PriorityQueue[int]) error {
			q.Insert(*req.Value, *req.Priority)
			return nil
		})
		return ItemResponse{Value: *req.Value, Priority: *req.Priority}, err
	})
}

func (s *Server) extractMax() gin.HandlerFunc {
	return handler.Wrap(func(_ context.Context, _ *EmptyRequest) (ValueResponse, error) {
		var v int
		err := s.locked(opExtractMax, func(q pqueue.PriorityQueue[int]) (err error) {
			v, err = q.ExtractMax()
			return err
		})
		return ValueResponse{Value: v}, queueError(opExtractMax, err)
	})
}

func (s *Server) findMax() gin.HandlerFunc {
	return handler.Wrap(func(_ context.Context, _ *EmptyRequest) (ValueResponse, error) {
		var v int
		err := s.locked(opFindMax, func(q pqueue.PriorityQueue[int]) (err error) {
			v, err = q.FindMax()
			return err
		})
		return ValueResponse{Value: v}, queueError(opFindMax, err)
	})
}

func (s *Server) getPriority() gin.HandlerFunc {
	return handler.Wrap(func(_ context.Context, req *ItemRequest) (ItemResponse, error) {
		var p int
		err := s.locked(opGetPriority, func(q pqueue.PriorityQueue[int]) (err error) {
			p, err = q.GetPriority(req.Value)
			return err
		})
		return ItemResponse{Value: req.Value, Priority: p}, queueError(opGetPriority, err)
	})
}

func (s *Server) updateKey() gin.HandlerFunc {
	return handler.Wrap(func(_ context.Context, req *UpdateRequest) (ItemResponse, error) {
		op := opModifyKey
		update := func(q pqueue.PriorityQueue[int]) error { return q.ModifyKey(req.Value, *req.Priority) }
		switch req.Mode {
		case "increase":
			op = opIncreaseKey
			update = func(q pqueue.PriorityQueue[int]) error { return q.IncreaseKey(req.Value, *req.Priority) }
		case "decrease":
			op = opDecreaseKey
			update = func(q pqueue.PriorityQueue[int]) error { return q.DecreaseKey(req.Value, *req.Priority) }
		}

		err := s.locked(op, update)
		return ItemResponse{Value: req.Value, Priority: *req.Priority}, queueError(op, err)
	})
}

func (s *Server) size() gin.HandlerFunc {
	return handler.Wrap(func(_ context.Context, _ *EmptyRequest) (SizeResponse, error) {
		var res SizeResponse
		err := s.locked(opSize, func(q pqueue.PriorityQueue[int]) error {
			res = SizeResponse{Backend: string(s.backend), Size: q.Size(), Capacity: q.Capacity()}
			return nil
		})
		return res, err
	})
}

func (s *Server) clear() gin.HandlerFunc {
	return handler.Wrap(func(_ context.Context, _ *EmptyRequest) (SizeResponse, error) {
		var res SizeResponse
		err := s.locked(opClear, func(q pqueue.PriorityQueue[int]) error {
			q.Clear()
			res = SizeResponse{Backend: string(s.backend), Size: q.Size(), Capacity: q.Capacity()}
			return nil
		})
		return res, err
	})
}

func (s *Server) fill() gin.HandlerFunc {
	return handler.WrapWithCode(response.CodeCreated, func(_ context.Context, req *FillRequest) (CountResponse, error) {
		err := s.locked(opFill, func(q pqueue.PriorityQueue[int]) error {
			return generator.Fill(q, req.Size, req.MinPriority, req.MaxPriority, generator.NewRand(req.Seed))
		})
		if err != nil {
			return CountResponse{}, apperr.Wrap(err, apperr.CodeValidationFailed, opFill+": invalid range", http.StatusBadRequest)
		}
		return CountResponse{Count: req.Size}, nil
	})
}

// importPairs replaces the queue with the text pair stream in the request body.
// Pairs read before a malformed token are kept.
func (s *Server) importPairs(c *gin.Context) {
	var n int
	err := s.locked(opImport, func(q pqueue.PriorityQueue[int]) (err error) {
		n, err = pqio.Load(c.Request.Body, q)
		return err
	})
	if err != nil {
		response.ErrorResponse(c, response.CodeParamInvalid,
			apperr.Wrap(err, apperr.CodeParamInvalid, opImport+": malformed pair stream", http.StatusBadRequest))
		return
	}
	response.SuccessResponse(c, response.CodeSuccess, CountResponse{Count: n})
}

// exportPairs writes the queue as a text pair stream in extraction order.
func (s *Server) exportPairs(c *gin.Context) {
	var buf bytes.Buffer
	var n int
	err := s.locked(opExport, func(q pqueue.PriorityQueue[int]) (err error) {
		n, err = pqio.Save(&buf, q)
		return err
	})
	if err != nil {
		response.ErrorResponse(c, response.CodeInternalServer, err)
		return
	}
	c.Header(constraints.HeaderPairCount, strconv.Itoa(n))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
