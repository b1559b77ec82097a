package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a stored chat message between a user and a trainer.
// Delivery (sockets, push) is out of scope; this is the record only.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   primitive.ObjectID `bson:"senderId" json:"senderId"`
	ReceiverID primitive.ObjectID `bson:"receiverId" json:"receiverId"`
	Content    string             `bson:"content" json:"content"`
	IsRead     bool               `bson:"isRead" json:"isRead"`
	SentAt     time.Time          `bson:"sentAt" json:"sentAt"`
}
