package provider

import (
	"testing"

	"github.com/openai/openai-go"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOpenAIProviderMessages(t *testing.T) {
	Convey("Given an OpenAI provider", t, func() {
		provider := NewOpenAIProvider("")

		Convey("A system message lands at the head of the conversation", func() {
			So(provider.AddUserMessage("hello"), ShouldBeNil)
			So(provider.AddSystemMessage("you are helpful"), ShouldBeNil)

			messages := provider.params.Messages.Value
			So(messages, ShouldHaveLength, 2)

			_, ok := messages[0].(openai.ChatCompletionSystemMessageParam)
			So(ok, ShouldBeTrue)
		})

		Convey("A second system message replaces the first", func() {
			So(provider.AddSystemMessage("first prompt"), ShouldBeNil)
			So(provider.AddUserMessage("hello"), ShouldBeNil)
			So(provider.AddSystemMessage("second prompt"), ShouldBeNil)

			messages := provider.params.Messages.Value
			So(messages, ShouldHaveLength, 2)

			systemCount := 0
			for _, msg := range messages {
				if _, ok := msg.(openai.ChatCompletionSystemMessageParam); ok {
					systemCount++
				}
			}
			So(systemCount, ShouldEqual, 1)
		})
	})
}
