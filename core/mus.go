package core

import (
	"time"

	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the persisted types. Field order is part
// of the on-disk format; append new fields at the end and never reorder.

var (
	stringSliceMUS = ord.NewSliceSer[string](ord.String)
	stringMapMUS   = ord.NewMapSer[string, string](ord.String, ord.String)
)

// DocumentMUS serializes Document values in MUS format.
var DocumentMUS = documentMUS{}

type documentMUS struct{}

var _ mus.Serializer[Document] = DocumentMUS

func (documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += stringSliceMUS.Marshal(v.Tags, bs[n:])
	n += ord.String.Marshal(v.Date, bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	var n1 int
	if v.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Tags, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Date, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	return v, n, nil
}

func (documentMUS) Size(v Document) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Text)
	size += stringSliceMUS.Size(v.Tags)
	size += ord.String.Size(v.Date)
	return size
}

func (documentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return
	}
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	return n + n1, nil
}

// UserProfileMUS serializes UserProfile values in MUS format.
var UserProfileMUS = userProfileMUS{}

type userProfileMUS struct{}

var _ mus.Serializer[UserProfile] = UserProfileMUS

func (userProfileMUS) Marshal(v UserProfile, bs []byte) (n int) {
	n = ord.String.Marshal(v.UserID, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Address, bs[n:])
	n += ord.String.Marshal(v.Country, bs[n:])
	n += varint.Int.Marshal(v.Age, bs[n:])
	n += stringMapMUS.Marshal(v.Preferences, bs[n:])
	n += stringSliceMUS.Marshal(v.SearchHistory, bs[n:])
	return n
}

func (userProfileMUS) Unmarshal(bs []byte) (v UserProfile, n int, err error) {
	var n1 int
	if v.UserID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Address, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Country, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Age, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Preferences, n1, err = stringMapMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.SearchHistory, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	return v, n, nil
}

func (userProfileMUS) Size(v UserProfile) (size int) {
	size = ord.String.Size(v.UserID)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Address)
	size += ord.String.Size(v.Country)
	size += varint.Int.Size(v.Age)
	size += stringMapMUS.Size(v.Preferences)
	size += stringSliceMUS.Size(v.SearchHistory)
	return size
}

func (userProfileMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = stringMapMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	return n + n1, nil
}

// OrderMUS serializes Order values in MUS format. PlacedAt is stored as a
// Unix-microsecond timestamp and restored in UTC.
var OrderMUS = orderMUS{}

type orderMUS struct{}

var _ mus.Serializer[Order] = OrderMUS

func (orderMUS) Marshal(v Order, bs []byte) (n int) {
	n = varint.Uint64.Marshal(v.Seq, bs)
	n += ord.String.Marshal(v.UserID, bs[n:])
	n += stringSliceMUS.Marshal(v.Items, bs[n:])
	n += varint.Int64.Marshal(v.PlacedAt.UnixMicro(), bs[n:])
	return n
}

func (orderMUS) Unmarshal(bs []byte) (v Order, n int, err error) {
	var n1 int
	if v.Seq, n, err = varint.Uint64.Unmarshal(bs); err != nil {
		return
	}
	if v.UserID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Items, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	var micros int64
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	v.PlacedAt = time.UnixMicro(micros).UTC()
	return v, n, nil
}

func (orderMUS) Size(v Order) (size int) {
	size = varint.Uint64.Size(v.Seq)
	size += ord.String.Size(v.UserID)
	size += stringSliceMUS.Size(v.Items)
	size += varint.Int64.Size(v.PlacedAt.UnixMicro())
	return size
}

func (orderMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = varint.Uint64.Skip(bs); err != nil {
		return
	}
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = varint.Int64.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	return n + n1, nil
}
